package validation

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/username/tallybridge/src/logger"
)

// AllowedUploadExtensions lists the spreadsheet formats the converter accepts.
var AllowedUploadExtensions = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types.
var AllowedClientContentTypes = map[string]bool{
	"text/csv":                 true,
	"application/csv":          true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain":               true, // CSVs are often plain text
	"application/octet-stream": true, // Fallback, but be more cautious
}

// ValidateUploadExtension checks the filename extension against the accepted
// spreadsheet formats.
func ValidateUploadExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedUploadExtensions[ext] {
		return fmt.Errorf("unsupported extension %q for %s", ext, filename)
	}
	return nil
}

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	declared := strings.ToLower(strings.Split(contentType, ";")[0])
	if allowed, exists := AllowedClientContentTypes[declared]; !exists || !allowed {
		if logger.L != nil {
			logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		}
		return fmt.Errorf("client-declared file type '%s' is not allowed for report upload", contentType)
	}
	return nil
}

// ValidateFileContentByMagicBytes checks the actual file content signature.
// It returns the detected content type and an error if validation fails.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) (string, error) {
	if file == nil {
		return "", fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 512) // Read first 512 bytes for MIME detection
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	// Reset the file read pointer so the actual decoder can read the full file.
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return "", fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	detectedContentType := http.DetectContentType(buffer[:n])
	detectedContentType = strings.ToLower(strings.Split(detectedContentType, ";")[0])

	// CSVs detect as text/plain; XLSX files are ZIP containers. Anything else
	// (executables, HTML) is rejected outright; octet-stream is allowed and
	// relies on strict parsing afterwards.
	allowedDetectedTypes := map[string]bool{
		"text/plain":               true,
		"text/csv":                 true,
		"application/csv":          true,
		"application/zip":          true,
		"application/octet-stream": true,
	}

	if !allowedDetectedTypes[detectedContentType] {
		if logger.L != nil {
			logger.L.Warn("Disallowed detected file content type (magic bytes)", "detectedContentType", detectedContentType)
		}
		return detectedContentType, fmt.Errorf("detected file content type '%s' is not consistent with a spreadsheet file", detectedContentType)
	}

	return detectedContentType, nil
}

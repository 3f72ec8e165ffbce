/*
Copyright 2026 the CDP Integration Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"bytes"
	"crypto/sha1" //nolint:gosec // the server identifies file content by its SHA-1
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

// MultipartJSONField names the change request part of a file upload.
const MultipartJSONField = "json"

// ContentHash returns the upper case SHA-1 the server uses to key file content.
func ContentHash(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec

	return fmt.Sprintf("%X", sum[:])
}

// FileContentHash is ContentHash for a file on disk.
func FileContentHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	return ContentHash(data), nil
}

// newMultipartBody builds a multipart/form-data body holding the JSON change
// request followed by the file, whose part is named after its content hash.
func newMultipartBody(manifest []byte, filePath string) ([]byte, string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("reading upload %s: %w", filePath, err)
	}

	var buffer bytes.Buffer

	writer := multipart.NewWriter(&buffer)

	jsonHeader := make(textproto.MIMEHeader)
	jsonHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, MultipartJSONField))
	jsonHeader.Set("Content-Type", contentTypeJSON)

	part, err := writer.CreatePart(jsonHeader)
	if err != nil {
		return nil, "", fmt.Errorf("creating json part: %w", err)
	}

	if _, err := part.Write(manifest); err != nil {
		return nil, "", fmt.Errorf("writing json part: %w", err)
	}

	fileHeader := make(textproto.MIMEHeader)
	fileHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, ContentHash(data), filepath.Base(filePath)))
	fileHeader.Set("Content-Type", "application/octet-stream")

	part, err = writer.CreatePart(fileHeader)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("writing file part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return buffer.Bytes(), writer.FormDataContentType(), nil
}

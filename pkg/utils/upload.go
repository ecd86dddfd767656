package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MaxImageSize caps uploads at 5 MB.
const MaxImageSize = 5 << 20

var (
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrImageTooLarge = errors.New("uploaded image exceeds the size limit")
)

// SaveUploadedImage stores an uploaded image under destDir and returns its
// public path below /uploads. The stored name is collision-resistant
// (unix millis plus a random hex suffix) and keeps the original extension.
func SaveUploadedImage(file *multipart.FileHeader, destDir string) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrNotAnImage
	}
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	ext := filepath.Ext(file.Filename)
	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(suffix) + ext

	dst, err := os.Create(filepath.Join(destDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

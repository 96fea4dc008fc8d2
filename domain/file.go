package domain

import (
	"bytes"
	"email-classifier/domain/mimetypes"
	"io"
	"os"
	"path/filepath"
)

// Origin tells how a file entered the upload area.
type Origin int

const (
	Picked Origin = iota
	Dropped
)

const sniffLen = 512

// File is a binary blob selected for upload. Content is read lazily
// through Open so that size checks happen before any read.
type File struct {
	Name         string
	Size         int64
	DeclaredType string
	Origin       Origin
	Open         func() (io.ReadCloser, error)
}

// FileFromPath stats path and returns a File that opens it on demand.
func FileFromPath(path string, origin Origin) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, err
	}
	return File{
		Name:   filepath.Base(path),
		Size:   info.Size(),
		Origin: origin,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FileFromBytes wraps in-memory content.
func FileFromBytes(name, declaredType string, content []byte, origin Origin) File {
	return File{
		Name:         name,
		Size:         int64(len(content)),
		DeclaredType: declaredType,
		Origin:       origin,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

// Sniff detects the media type from the first bytes of the content.
func (f File) Sniff() (string, error) {
	if f.Open == nil {
		return string(mimetypes.Unknown), nil
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return mimetypes.Detect(head[:n]), nil
}

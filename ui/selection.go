package ui

import (
	"email-classifier/domain"
	"sync"

	"github.com/dustin/go-humanize"
)

// SelectionLabel is the text of the upload area.
type SelectionLabel struct {
	Icon   string
	Title  string
	Detail string
}

var emptySelectionLabel = SelectionLabel{
	Icon:   "📤",
	Title:  "Clique aqui ou arraste um arquivo .txt",
	Detail: "Formatos suportados: .txt (máx. 10MB)",
}

// FileSelection is the file input of the file tab plus its visual state.
type FileSelection struct {
	mu      sync.Mutex
	file    *domain.File
	hovered bool
	hook    *changeHook
}

func NewFileSelection() *FileSelection {
	return newFileSelection(nil)
}

func newFileSelection(hook *changeHook) *FileSelection {
	return &FileSelection{hook: hook}
}

// Select is the single entry point for picked and dropped files.
func (s *FileSelection) Select(file domain.File) {
	s.mu.Lock()
	s.file = &file
	s.mu.Unlock()
	s.hook.fire()
}

func (s *FileSelection) Clear() {
	s.mu.Lock()
	s.file = nil
	s.hovered = false
	s.mu.Unlock()
	s.hook.fire()
}

// Selected returns a copy of the current file, or nil.
func (s *FileSelection) Selected() *domain.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	f := *s.file
	return &f
}

func (s *FileSelection) HasFile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file != nil
}

// Highlighted is true while a drag hovers the area or once a file is selected.
func (s *FileSelection) Highlighted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hovered || s.file != nil
}

func (s *FileSelection) Label() SelectionLabel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return emptySelectionLabel
	}
	return SelectionLabel{
		Icon:   "📄",
		Title:  "Arquivo selecionado: " + s.file.Name,
		Detail: "Tamanho: " + humanize.IBytes(uint64(max(s.file.Size, 0))),
	}
}

func (s *FileSelection) setHovered(hovered bool) {
	s.mu.Lock()
	changed := s.hovered != hovered
	s.hovered = hovered
	s.mu.Unlock()
	if changed {
		s.hook.fire()
	}
}

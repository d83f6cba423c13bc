package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Script is a camera script run once per frame.
type Script interface {
	RunFrame(frame int, t float32) error
}

// IsScriptFile reports whether path has an extension LoadScript understands.
func IsScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo" || ext == ".lua"
}

// LoadScript compiles the script at path, picking the language from its
// extension.
func (s *Surface) LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tengo":
		ts, err := s.CompileTengo(data)
		if err != nil {
			return nil, err
		}
		return ts, nil
	case ".lua":
		ls, err := s.LoadLua(string(data))
		if err != nil {
			return nil, err
		}
		return ls, nil
	}
	return nil, fmt.Errorf("unsupported script %s: want .tengo or .lua", path)
}

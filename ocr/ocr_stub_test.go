//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewEngineReturnsError(t *testing.T) {
	engine, err := NewEngine()
	if err == nil {
		t.Error("Expected error from NewEngine() when OCR is disabled")
	}
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Expected ErrNotEnabled, got: %v", err)
	}
	if engine != nil {
		t.Error("Expected nil engine when OCR is disabled")
	}
}

func TestStubOperationsReturnError(t *testing.T) {
	var engine *Engine

	if _, err := engine.Recognize(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Recognize: expected ErrNotEnabled, got: %v", err)
	}
	if _, err := engine.RecognizeFile("page.png"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeFile: expected ErrNotEnabled, got: %v", err)
	}
	if _, err := engine.Text(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("Text: expected ErrNotEnabled, got: %v", err)
	}
}

func TestCloseOnNilEngine(t *testing.T) {
	var engine *Engine
	if err := engine.Close(); err != nil {
		t.Errorf("Close on nil engine should not error: %v", err)
	}
}

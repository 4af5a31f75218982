package pages

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/SEGHAIRII/colscan/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Read decodes a result stream into its pages.
func Read(r io.Reader) ([]model.Page, error) {
	var pgs []model.Page
	if err := json.NewDecoder(r).Decode(&pgs); err != nil {
		return nil, fmt.Errorf("failed to decode result pages: %w", err)
	}
	return pgs, nil
}

// ReadFile decodes the result file at path.
func ReadFile(path string) ([]model.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open result file: %w", err)
	}
	defer f.Close()

	pgs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pgs, nil
}

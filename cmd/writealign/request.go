package main

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aleister1102/writealign/internal/common"
	"github.com/aleister1102/writealign/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// stdinInput selects standard input as the request source
const stdinInput = "-"

// loadRequests reads one request or a list of requests from path, or from stdin when
// path is empty or "-". YAML is used for .yaml and .yml files, JSON otherwise.
func loadRequests(path string, stdin io.Reader, logger zerolog.Logger) ([]models.ComparisonRequest, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == stdinInput {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, common.WrapError(err, "failed to read request from stdin")
		}
	} else {
		fileManager := common.NewFileManager(logger)
		if !fileManager.FileExists(path) {
			return nil, common.NewValidationError("input", path, "input file does not exist")
		}
		data, err = fileManager.ReadFile(path, common.DefaultFileReadOptions())
		if err != nil {
			return nil, common.WrapError(err, "failed to read request file")
		}
	}

	decode := decodeJSONRequests
	if isYAMLPath(path) {
		decode = decodeYAMLRequests
	}

	reqs, err := decode(data)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, common.NewValidationError("input", path, "request list is empty")
	}
	return reqs, nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func decodeJSONRequests(data []byte) ([]models.ComparisonRequest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, common.NewValidationError("input", nil, "request is empty")
	}

	if trimmed[0] == '[' {
		var reqs []models.ComparisonRequest
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return nil, common.WrapError(err, "failed to decode JSON request list")
		}
		return reqs, nil
	}

	var req models.ComparisonRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, common.WrapError(err, "failed to decode JSON request")
	}
	return []models.ComparisonRequest{req}, nil
}

func decodeYAMLRequests(data []byte) ([]models.ComparisonRequest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, common.WrapError(err, "failed to parse YAML request")
	}
	if len(root.Content) == 0 {
		return nil, common.NewValidationError("input", nil, "request is empty")
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var reqs []models.ComparisonRequest
		if err := doc.Decode(&reqs); err != nil {
			return nil, common.WrapError(err, "failed to decode YAML request list")
		}
		return reqs, nil
	}

	var req models.ComparisonRequest
	if err := doc.Decode(&req); err != nil {
		return nil, common.WrapError(err, "failed to decode YAML request")
	}
	return []models.ComparisonRequest{req}, nil
}

// batchOutputPath returns the per-request report path for index i of a batch,
// e.g. report.html becomes report-1.html for the second request.
func batchOutputPath(outputPath string, i int) string {
	ext := filepath.Ext(outputPath)
	stem := strings.TrimSuffix(outputPath, ext)
	return stem + "-" + strconv.Itoa(i) + ext
}

package io

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/pyrapath/pkg/errors"
)

// DefaultInputFile is the input file used when none is given.
const DefaultInputFile = "pyramid_sample_input.txt"

// SampleInput is the content written by the sample command.
const SampleInput = "Target: 720\n2\n4,3\n3,2,6\n2,9,5,2\n10,5,2,15,5\n"

// targetKeyword introduces the target line, compared case-insensitively.
const targetKeyword = "target"

var (
	targetSep = regexp.MustCompile(`[\s,:;]+`)
	cellSep   = regexp.MustCompile(`[\s,]+`)
)

// Input is a parsed pyramid description.
type Input struct {
	Target *big.Int  `json:"target"`
	Rows   [][]int64 `json:"rows"`
}

// ReadPyramid decodes the textual pyramid format from r.
//
// The first non-empty line must be the target line:
//
//	Target: 720
//
// Tokens on the target line are split on whitespace, commas, colons and
// semicolons; the first token must be "target" (any case) and the second an
// integer of any size. Every following non-empty line is a row of integers
// separated by commas and/or whitespace, apex first.
//
// ReadPyramid returns:
//   - MISSING_TARGET_KEYWORD if the first line does not start with "target"
//   - INVALID_TARGET if the target is missing or not an integer
//   - NON_INTEGER_VALUE if a cell is not a 64-bit integer
//
// Row shape is not checked here; that is the job of pyramid.Build.
// ReadPyramid does not close r.
func ReadPyramid(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	in := &Input{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.ReplaceAll(sc.Text(), "\r", ""))
		if line == "" {
			continue
		}

		if in.Target == nil {
			target, err := parseTarget(line)
			if err != nil {
				return nil, err
			}
			in.Target = target
			continue
		}

		row, err := parseRow(line, lineNo)
		if err != nil {
			return nil, err
		}
		in.Rows = append(in.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read pyramid")
	}

	if in.Target == nil {
		return nil, errors.New(errors.ErrCodeMissingTargetWord, "input is empty: expected a %q line", "Target: <int>")
	}
	return in, nil
}

// ParseTarget parses a target value given on its own, such as a flag value.
func ParseTarget(s string) (*big.Int, error) {
	t, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidTarget, "target value must be an integer, got %q", s)
	}
	return t, nil
}

func parseTarget(line string) (*big.Int, error) {
	tokens := splitTokens(targetSep, line)
	if len(tokens) == 0 || !strings.EqualFold(tokens[0], targetKeyword) {
		return nil, errors.New(errors.ErrCodeMissingTargetWord,
			"target value must be preceded by the word 'Target', got %q", line)
	}
	if len(tokens) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTarget, "target line %q has no value", line)
	}
	return ParseTarget(tokens[1])
}

func parseRow(line string, lineNo int) ([]int64, error) {
	tokens := splitTokens(cellSep, line)
	row := make([]int64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNonIntegerValue, err,
				"line %d: cell %d %q is not an integer", lineNo, i+1, tok)
		}
		row[i] = v
	}
	return row, nil
}

func splitTokens(re *regexp.Regexp, line string) []string {
	var out []string
	for _, tok := range re.Split(line, -1) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// ImportFile reads a pyramid description from the file at path.
//
// A missing file is reported as FILE_NOT_FOUND; all other errors are those of
// [ReadPyramid], wrapped with the path.
func ImportFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open input data file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	in, err := ReadPyramid(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// CreateSample writes [SampleInput] to path. It refuses to overwrite an
// existing file and returns FILE_EXISTS in that case.
func CreateSample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if os.IsExist(err) {
		return errors.New(errors.ErrCodeFileExists, "cannot create %s: file already exists", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", path)
	}
	if _, err := f.WriteString(SampleInput); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "close %s", path)
	}
	return nil
}

package vault

import (
	"bytes"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/mdvault/mdvault/pkg/markdown"
)

// Issue records a file whose frontmatter block is present but does not
// parse as YAML.
type Issue struct {
	Path string
	Err  error
}

// CheckResult summarizes a frontmatter audit over a directory.
type CheckResult struct {
	Total   int
	With    int
	Missing []string
	Invalid []Issue
}

// CheckFrontmatter walks the Markdown files under root matching pattern and
// reports which of them lack a closed leading frontmatter block, and which
// carry a block that is not valid YAML. Read failures do not stop the scan;
// they are aggregated and returned alongside the result.
func CheckFrontmatter(root, pattern string) (*CheckResult, error) {
	paths, err := ListFiles(root, pattern)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{}
	var walkErrs *multierror.Error

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			walkErrs = multierror.Append(walkErrs, errors.Wrapf(err, "reading %s", path))
			continue
		}

		result.Total++

		if !markdown.HasFrontmatter(string(content)) {
			result.Missing = append(result.Missing, path)
			continue
		}

		result.With++

		if err := validateFrontmatterYAML(content); err != nil {
			result.Invalid = append(result.Invalid, Issue{Path: path, Err: err})
		}
	}

	return result, walkErrs.ErrorOrNil()
}

// validateFrontmatterYAML runs the document through goldmark with the meta
// extension and re-parses the raw block with yaml.v3. goldmark-meta is what
// downstream tooling uses to read these notes, so both parsers have to
// accept the block.
func validateFrontmatterYAML(content []byte) error {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return errors.Wrap(err, "markdown conversion failed")
	}

	if _, err := meta.TryGet(pctx); err != nil {
		return errors.Wrap(err, "frontmatter rejected by goldmark-meta")
	}

	fm, _ := markdown.ExtractFrontmatter(markdown.SplitLines(string(content)))
	if len(fm) < 2 {
		return nil
	}

	raw := markdown.JoinLines(fm[1 : len(fm)-1])
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return errors.Wrap(err, "frontmatter is not a YAML mapping")
	}

	return nil
}

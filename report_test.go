package projectsummary_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/projectsummary"
	"gopkg.in/yaml.v3"
)

var expectedText = strings.Join([]string{
	"",
	"This is the answer to question one:",
	"",
	"COUNTRY             COUNT   ",
	"Republic of Kenya   2",
	"",
	"",
	"",
	"This is the answer to question two:",
	"",
	"THEME   OCCURRENCE   ",
	"8       2",
	"11      1",
	"",
	"",
	"",
	"This is the answer to question three:",
	"",
	"INDEX   NAME   ",
	"0       Environment",
	"1       Human development",
	"2       Human development",
	"",
}, "\n")

func TestWriteText(t *testing.T) {
	report, err := createTestSummarizer(t).Summarize([]byte(projects))
	assert.NoError(t, err)
	buf := &bytes.Buffer{}
	report.WriteText(buf)
	assert.Equals(t, buf.String(), expectedText)
}

func TestWriteTextMissingName(t *testing.T) {
	report := &projectsummary.Report{
		Countries: []projectsummary.Count{},
		Themes:    []projectsummary.Count{},
		Names:     []*string{nil},
		Errors:    map[projectsummary.SectionID]error{},
	}
	buf := &bytes.Buffer{}
	report.WriteText(buf)
	assert.Contains(t, buf.String(), "0       NaN\n")
}

func TestWriteYAMLErrors(t *testing.T) {
	report := &projectsummary.Report{
		Errors: map[projectsummary.SectionID]error{
			projectsummary.SectionNames: projectsummary.ErrQueryFailed{
				Section: projectsummary.SectionNames,
				Cause:   errors.New("column not found"),
			},
		},
	}
	buf := &bytes.Buffer{}
	assert.NoError(t, report.WriteYAML(buf))
	var decoded map[string]any
	assert.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equals(t, decoded["errors"], any(map[string]any{
		"names": "names query failed (column not found)",
	}))
}

package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	check "gopkg.in/check.v1"

	"github.com/mycok/uPartition/report"
)

var _ = check.Suite(new(ReportTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type ReportTestSuite struct{}

func (s *ReportTestSuite) assignments() report.Assignments {
	summary := report.NewSummary(5, true, map[int64]int{0: 3, 1: 1})

	return report.NewAssignments(summary, []report.Assignment{
		{VertexID: "c", Key: "item-c", Label: 0},
		{VertexID: "a", Key: "item-a", Label: 0},
		{VertexID: "d", Key: "item-d", Label: 1},
		{VertexID: "b", Key: "item-b", Label: 0},
	})
}

func (s *ReportTestSuite) TestAssignmentsAreSortedByVertex(c *check.C) {
	a := s.assignments()

	var ids []string
	for _, e := range a.Entries {
		ids = append(ids, e.VertexID)
	}

	c.Assert(ids, check.DeepEquals, []string{"a", "b", "c", "d"})
	c.Assert(a.Summary.Sizes, check.DeepEquals, map[string]int{"0": 3, "1": 1})
}

func (s *ReportTestSuite) TestAnonymize(c *check.C) {
	anon := report.Anonymize(s.assignments())

	c.Assert(anon.Summary.SuperSteps, check.Equals, 5)
	c.Assert(anon.Entries, check.DeepEquals, []report.AnonymizedAssignment{
		{Vertex: "v:a", Label: 0},
		{Vertex: "v:b", Label: 0},
		{Vertex: "v:c", Label: 0},
		{Vertex: "v:d", Label: 1},
	})
}

func (s *ReportTestSuite) TestTextFormat(c *check.C) {
	f, err := report.NewFormatter(report.FormatText)
	c.Assert(err, check.IsNil)

	out, err := f.Format(s.assignments())
	c.Assert(err, check.IsNil)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	c.Assert(lines, check.DeepEquals, []string{
		"super steps: 5, converged: true",
		"partition 0: 3 vertices",
		"partition 1: 1 vertices",
		"a\titem-a\t0",
		"b\titem-b\t0",
		"c\titem-c\t0",
		"d\titem-d\t1",
	})

	out, err = f.Format(report.Anonymize(s.assignments()))
	c.Assert(err, check.IsNil)
	c.Assert(strings.Contains(string(out), "item-"), check.Equals, false)
	c.Assert(strings.Contains(string(out), "v:d\t1\n"), check.Equals, true)
}

func (s *ReportTestSuite) TestJSONFormat(c *check.C) {
	f, err := report.NewFormatter(report.FormatJSON)
	c.Assert(err, check.IsNil)

	out, err := f.Format(report.Anonymize(s.assignments()))
	c.Assert(err, check.IsNil)

	var doc struct {
		Summary struct {
			Converged bool           `json:"converged"`
			Sizes     map[string]int `json:"sizes"`
		} `json:"summary"`
		Assignments []map[string]interface{} `json:"assignments"`
	}
	c.Assert(json.Unmarshal(out, &doc), check.IsNil)
	c.Assert(doc.Summary.Converged, check.Equals, true)
	c.Assert(doc.Summary.Sizes, check.DeepEquals, map[string]int{"0": 3, "1": 1})
	c.Assert(doc.Assignments, check.HasLen, 4)
	c.Assert(doc.Assignments[0]["v"], check.Equals, "v:a")
}

func (s *ReportTestSuite) TestTOMLFormat(c *check.C) {
	f, err := report.NewFormatter(report.FormatTOML)
	c.Assert(err, check.IsNil)

	exp := s.assignments()
	out, err := f.Format(exp)
	c.Assert(err, check.IsNil)

	var got report.Assignments
	c.Assert(toml.Unmarshal(out, &got), check.IsNil)
	c.Assert(got, check.DeepEquals, exp)
}

func (s *ReportTestSuite) TestUnknownFormat(c *check.C) {
	_, err := report.NewFormatter("xml")
	c.Assert(errors.Is(err, report.ErrUnknownFormat), check.Equals, true)

	_, err = report.NewReporter(report.Config{Format: "xml"})
	c.Assert(errors.Is(err, report.ErrUnknownFormat), check.Equals, true)
}

func (s *ReportTestSuite) TestReporterWritesToOutput(c *check.C) {
	var buf bytes.Buffer
	r, err := report.NewReporter(report.Config{
		Format:    report.FormatJSON,
		Anonymize: true,
		Output:    &buf,
	})
	c.Assert(err, check.IsNil)

	c.Assert(r.Report(s.assignments()), check.IsNil)
	c.Assert(strings.Contains(buf.String(), `"v":"v:b"`), check.Equals, true)
	c.Assert(strings.Contains(buf.String(), "item-b"), check.Equals, false)
}

func (s *ReportTestSuite) TestReporterLogs(c *check.C) {
	logger, hook := logtest.NewNullLogger()

	r, err := report.NewReporter(report.Config{Logger: logrus.NewEntry(logger)})
	c.Assert(err, check.IsNil)
	c.Assert(r.Report(s.assignments()), check.IsNil)

	entry := hook.LastEntry()
	c.Assert(entry, check.NotNil)
	c.Assert(entry.Level, check.Equals, logrus.InfoLevel)
	c.Assert(entry.Data["format"], check.Equals, report.FormatText)
	c.Assert(entry.Data["vertices"], check.Equals, 4)
	c.Assert(strings.HasPrefix(entry.Message, "super steps: 5"), check.Equals, true)
}

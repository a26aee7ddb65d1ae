package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	service "github.com/okian/marks/internal/app"
	"github.com/okian/marks/internal/report"
	"github.com/okian/marks/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func newTestBuilder() *report.Builder {
	m := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
	svc := service.New(service.WithMetrics(m))
	return report.NewBuilder(svc, report.WithMetrics(m))
}

const sampleRoster = `
students:
  - first_name: " Ada "
    last_name: " Lovelace "
    scores: [80, 90]
  - first_name: Grace
    last_name: Hopper
    scores: [95, 85]
  - first_name: ""
    last_name: Turing
    scores: [70]
`

func TestDecodeRoster(t *testing.T) {
	convey.Convey("Given a YAML roster document", t, func() {
		convey.Convey("When decoding a well-formed roster", func() {
			roster, err := report.DecodeRoster(strings.NewReader(sampleRoster))

			convey.Convey("Then all students should be present", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(roster.Students, convey.ShouldHaveLength, 3)
				convey.So(roster.Students[0].FirstName, convey.ShouldEqual, " Ada ")
				convey.So(roster.Students[1].Scores, convey.ShouldResemble, []float64{95, 85})
			})
		})

		convey.Convey("When decoding malformed YAML", func() {
			_, err := report.DecodeRoster(strings.NewReader("students: ["))

			convey.Convey("Then it should fail with the decode kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "decode roster failed")
			})
		})

		convey.Convey("When a per-student total is set", func() {
			doc := "students:\n  - first_name: A\n    last_name: B\n    scores: [10]\n    total_possible: 20\n"
			roster, err := report.DecodeRoster(strings.NewReader(doc))

			convey.Convey("Then the override should decode", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(roster.Students[0].TotalPossible, convey.ShouldEqual, 20)
			})
		})
	})
}

func TestBuildReport(t *testing.T) {
	convey.Convey("Given a report builder", t, func() {
		b := newTestBuilder()
		ctx := context.Background()

		convey.Convey("When building from a mixed roster", func() {
			rep, err := b.FromYAML(ctx, strings.NewReader(sampleRoster))

			convey.Convey("Then valid students should be graded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rep.Results, convey.ShouldHaveLength, 3)
				convey.So(rep.Graded, convey.ShouldEqual, 2)
				convey.So(rep.Rejected, convey.ShouldEqual, 1)

				convey.So(rep.Results[0].FullName, convey.ShouldEqual, "Ada Lovelace")
				convey.So(rep.Results[0].Average, convey.ShouldEqual, 85)
				convey.So(rep.Results[1].FullName, convey.ShouldEqual, "Grace Hopper")
				convey.So(rep.Results[1].Average, convey.ShouldEqual, 90)
			})

			convey.Convey("And the rejected student should keep a row", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rep.Results[2].Failed(), convey.ShouldBeTrue)
				convey.So(rep.Results[2].Err, convey.ShouldContainSubstring, "first name cannot be empty")
			})

			convey.Convey("And the class average should cover graded students only", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rep.ClassAverage, convey.ShouldEqual, 87.5)
			})
		})

		convey.Convey("When a student has an invalid score list", func() {
			doc := "students:\n  - first_name: A\n    last_name: B\n    scores: [150]\n"
			rep, err := b.FromYAML(ctx, strings.NewReader(doc))

			convey.Convey("Then the row should carry the indexed error", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rep.Rejected, convey.ShouldEqual, 1)
				convey.So(rep.Results[0].Err, convey.ShouldContainSubstring, "score at index 0 cannot exceed total possible points")
			})
		})

		convey.Convey("When a student sets its own total possible", func() {
			doc := "students:\n  - first_name: A\n    last_name: B\n    scores: [10]\n    total_possible: 20\n"
			rep, err := b.FromYAML(ctx, strings.NewReader(doc))

			convey.Convey("Then the override should drive the percentage", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rep.Results[0].Average, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When the roster is empty", func() {
			_, err := b.Build(ctx, &report.Roster{})

			convey.Convey("Then it should fail with the empty kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "roster has no students")
			})
		})
	})
}

func TestRenderReport(t *testing.T) {
	convey.Convey("Given a built report", t, func() {
		b := newTestBuilder()
		rep, err := b.FromYAML(context.Background(), strings.NewReader(sampleRoster))
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When rendering to text", func() {
			var buf bytes.Buffer
			renderErr := rep.Render(&buf)
			out := buf.String()

			convey.Convey("Then the rows and summary should be present", func() {
				convey.So(renderErr, convey.ShouldBeNil)
				convey.So(out, convey.ShouldContainSubstring, "Grade Report")
				convey.So(out, convey.ShouldContainSubstring, "Ada Lovelace")
				convey.So(out, convey.ShouldContainSubstring, "85.0%")
				convey.So(out, convey.ShouldContainSubstring, "REJECTED")
				convey.So(out, convey.ShouldContainSubstring, "Class average: 87.5% (2 graded, 1 rejected)")
			})
		})
	})
}

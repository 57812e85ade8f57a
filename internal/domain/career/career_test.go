package career

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/okian/studytrack/internal/domain/metric"
	"github.com/okian/studytrack/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func assessmentWith(vals map[metric.Metric]float64) *model.Assessment {
	var v metric.Values
	for m, x := range vals {
		v.Set(m, x)
	}
	return &model.Assessment{ID: "a1", UserID: "u1", Values: v}
}

func subjectNames(recs []model.CareerAlignedRecommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Subject.Name
	}
	return out
}

func mustCareer(t *testing.T, name string) model.Career {
	t.Helper()
	c, ok := Default().Career(name)
	if !ok {
		t.Fatalf("career %q not in catalog", name)
	}
	return c
}

func TestCatalog(t *testing.T) {
	Convey("Given the default catalog", t, func() {
		c := Default()

		Convey("Careers are listed by name", func() {
			var names []string
			for _, cr := range c.Careers() {
				names = append(names, cr.Name)
			}
			want := []string{"Cybersecurity Specialist", "Data Analyst", "Doctor", "Engineer", "Software Developer"}
			So(names, ShouldResemble, want)
		})

		Convey("Careers resolve by name or slug", func() {
			byName, ok := c.Career("  software DEVELOPER ")
			So(ok, ShouldBeTrue)
			bySlug, ok := c.Career("software-developer")
			So(ok, ShouldBeTrue)
			So(bySlug.Name, ShouldEqual, byName.Name)
			So(byName.Slug(), ShouldEqual, "software-developer")

			_, ok = c.Career("astronaut")
			So(ok, ShouldBeFalse)
			_, ok = c.Career("")
			So(ok, ShouldBeFalse)
		})

		Convey("Every career has five skills with rules", func() {
			for _, cr := range c.Careers() {
				skills := c.CareerSkills(cr)
				So(skills, ShouldHaveLength, 5)
				for _, s := range skills {
					So(len(s.Rules), ShouldBeGreaterThan, 0)
				}
			}
		})

		Convey("Every subject has resources", func() {
			for _, cr := range c.Careers() {
				for _, s := range c.CareerSkills(cr) {
					for _, l := range c.Links(s.Name) {
						So(c.Resources(l.Subject), ShouldNotBeEmpty)
					}
				}
			}
		})

		Convey("Subjects for a skill are filtered by course and sorted", func() {
			links := c.SubjectsForSkill("Algorithms", "Computer Science")
			So(links, ShouldHaveLength, 1)
			So(links[0].Subject.Name, ShouldEqual, "Data Structures and Algorithms")
			So(c.SubjectsForSkill("Algorithms", ""), ShouldHaveLength, 2)
		})

		Convey("Returned slices do not alias catalog state", func() {
			rs := c.Resources("Computer Science")
			rs[0].Title = "changed"
			So(c.Resources("Computer Science")[0].Title, ShouldNotEqual, "changed")
		})
	})

	Convey("Invalid catalog data is rejected", t, func() {
		skills := []model.SkillArea{{Name: "Focus", Importance: model.LevelHigh}}
		subjects := []model.Subject{{Name: "Logic", FieldOfStudy: "General"}}

		_, err := NewCatalog([]model.Career{{Name: "X", Skills: []string{"Nope"}}}, skills, subjects, nil, nil)
		So(errors.Is(err, ErrInvalidCatalog), ShouldBeTrue)

		_, err = NewCatalog(nil, skills, subjects, []model.SkillSubjectLink{{Skill: "Focus", Subject: "Rhetoric"}}, nil)
		So(errors.Is(err, ErrInvalidCatalog), ShouldBeTrue)

		_, err = NewCatalog(nil, skills, subjects, nil, map[string][]model.Resource{"Rhetoric": {{Title: "x"}}})
		So(errors.Is(err, ErrInvalidCatalog), ShouldBeTrue)

		bad := []model.SkillArea{{Name: "Focus", Rules: []model.MetricRule{{Metric: metric.Metric(99), Weight: 1}}}}
		_, err = NewCatalog(nil, bad, subjects, nil, nil)
		So(errors.Is(err, ErrInvalidCatalog), ShouldBeTrue)

		_, err = NewCatalog(nil, append(skills, skills...), subjects, nil, nil)
		So(errors.Is(err, ErrInvalidCatalog), ShouldBeTrue)
	})
}

func TestCourseMatchesField(t *testing.T) {
	Convey("Given course to field matching", t, func() {
		cases := []struct {
			course, field string
			want          bool
		}{
			{"Computer Science", "Computer Science", true},
			{"BS Computer Science", "computer science", true},
			{"Computer Science", "General", true},
			{"Nursing", "cross-disciplinary", true},
			{"", "Medicine", true},
			{"Computer Science", "Medicine", false},
			{"Computer Science", "Engineering", false},
			{"Computer Science", "Data Science", true},
			{"Information Technology", "Computer Science", true},
			{"Civil Engineering", "Engineering", true},
			{"Mechanical-Design", "Engineering", true},
			{"Nursing", "Medicine", true},
			{"Nursing", "Business", false},
			{"Accounting", "Business", true},
			{"Health Sciences", "Medicine", true},
			{"Fine Arts", "Philosophy", false},
			{"Philosophy of Mind", "Philosophy", true},
		}
		for _, tc := range cases {
			So(CourseMatchesField(tc.course, tc.field), ShouldEqual, tc.want)
		}
	})
}

func TestWeakness(t *testing.T) {
	Convey("Given the Programming skill", t, func() {
		skill, ok := Default().Skill("Programming")
		So(ok, ShouldBeTrue)

		Convey("Missing metrics score neutral", func() {
			So(Weakness(*assessmentWith(nil), skill, nil), ShouldAlmostEqual, 0.5, 1e-9)
		})

		Convey("Ideal habits score zero and the worst score one", func() {
			best := assessmentWith(map[metric.Metric]float64{
				metric.StudyHours: 12, metric.FocusScore: 100,
				metric.AssignmentsCompletedPerWeek: 20, metric.PhoneUsageHours: 0,
			})
			worst := assessmentWith(map[metric.Metric]float64{
				metric.StudyHours: 0, metric.FocusScore: 0,
				metric.AssignmentsCompletedPerWeek: 0, metric.PhoneUsageHours: 12,
			})
			So(Weakness(*best, skill, nil), ShouldAlmostEqual, 0, 1e-9)
			So(Weakness(*worst, skill, nil), ShouldAlmostEqual, 1, 1e-9)
		})

		Convey("Out of range values are clamped", func() {
			a := assessmentWith(map[metric.Metric]float64{
				metric.StudyHours: 40, metric.FocusScore: 300,
				metric.AssignmentsCompletedPerWeek: 99, metric.PhoneUsageHours: -5,
			})
			So(Weakness(*a, skill, nil), ShouldAlmostEqual, 0, 1e-9)
		})

		Convey("Overrides replace stored values", func() {
			a := assessmentWith(map[metric.Metric]float64{metric.StudyHours: 0})
			baseline := Weakness(*a, skill, nil)
			simulated := Weakness(*a, skill, metric.Overrides{metric.StudyHours: 12})
			So(simulated, ShouldBeLessThan, baseline)
			// study weighs 0.3: from weakness 1 to 0.
			So(baseline-simulated, ShouldAlmostEqual, 0.3, 1e-9)
		})
	})

	Convey("A skill without rules or weights scores neutral", t, func() {
		a := *assessmentWith(map[metric.Metric]float64{metric.StudyHours: 0})
		So(Weakness(a, model.SkillArea{Name: "Empty"}, nil), ShouldEqual, 0.5)
		zero := model.SkillArea{Rules: []model.MetricRule{{Metric: metric.StudyHours, HigherIsBetter: true, Weight: 0}}}
		So(Weakness(a, zero, nil), ShouldEqual, 0.5)
	})
}

func TestRank(t *testing.T) {
	Convey("Given a computer science student aiming at software development", t, func() {
		r := NewRanker(nil)
		dev := mustCareer(t, "Software Developer")

		Convey("Neutral habits rank the most weighted subjects first", func() {
			recs := r.ForCareer(assessmentWith(nil), dev, "Computer Science", nil, 3)
			want := []string{"Data Structures and Algorithms", "Introduction to Programming", "Software Development"}
			if diff := cmp.Diff(want, subjectNames(recs)); diff != "" {
				t.Errorf("subjects mismatch (-want +got):\n%s", diff)
			}

			dsa := recs[0]
			So(dsa.WeaknessScore, ShouldEqual, 0.5)
			So(dsa.BaselineWeaknessScore, ShouldEqual, 0.5)
			So(dsa.GapClosurePercent, ShouldEqual, 0)
			So(dsa.Relevance, ShouldEqual, model.LevelCritical)
			So(dsa.Importance, ShouldEqual, model.LevelCritical)
			So(dsa.SupportingSkills, ShouldResemble, []string{"Algorithms", "Data Structures"})
			So(dsa.CareerRelevanceContext, ShouldEqual, "Critical for Software Developer")
			So(dsa.Resources, ShouldNotBeEmpty)
		})

		Convey("The limit caps the list and a larger limit reaches lower subjects", func() {
			recs := r.ForCareer(assessmentWith(nil), dev, "Computer Science", nil, MaxLimit)
			So(recs, ShouldHaveLength, 7)
			So(recs[6].Subject.Name, ShouldEqual, "Data Analysis")
			So(recs[6].WeaknessScore, ShouldAlmostEqual, 0.24, 1e-9)
		})

		Convey("Simulated improvements close part of the gap", func() {
			overrides := metric.Overrides{metric.StudyHours: 12, metric.FocusScore: 100}
			recs := r.ForCareer(assessmentWith(nil), dev, "Computer Science", overrides, MaxLimit)
			var softDev model.CareerAlignedRecommendation
			for _, rec := range recs {
				if rec.Subject.Name == "Software Development" {
					softDev = rec
				}
			}
			So(softDev.BaselineWeaknessScore, ShouldEqual, 0.5)
			So(softDev.WeaknessScore, ShouldAlmostEqual, 0.2, 1e-9)
			So(softDev.GapClosurePercent, ShouldAlmostEqual, 30, 1e-9)
			So(softDev.SupportingSkills, ShouldResemble, []string{"Programming", "System Design"})
		})

		Convey("The plain ranking labels readiness by importance", func() {
			recs := r.Rank(assessmentWith(nil), Default().CareerSkills(dev), "Computer Science", nil, 1)
			So(recs, ShouldHaveLength, 1)
			So(recs[0].CareerRelevanceContext, ShouldEqual, "Critical for career readiness")
		})

		Convey("Medicine subjects never appear", func() {
			for _, cr := range Default().Careers() {
				for _, rec := range r.ForCareer(assessmentWith(nil), cr, "Computer Science", nil, MaxLimit) {
					So(rec.Subject.FieldOfStudy, ShouldNotEqual, "Medicine")
				}
			}
			doctor := mustCareer(t, "doctor")
			So(r.ForCareer(assessmentWith(nil), doctor, "Computer Science", nil, MaxLimit), ShouldBeEmpty)
		})
	})

	Convey("Degenerate inputs yield an empty list", t, func() {
		r := NewRanker(nil)
		dev := mustCareer(t, "Software Developer")
		So(r.ForCareer(nil, dev, "Computer Science", nil, 3), ShouldBeEmpty)
		So(r.Rank(assessmentWith(nil), nil, "", nil, 3), ShouldBeEmpty)
		So(r.ForCareer(assessmentWith(nil), dev, "", nil, 0), ShouldBeEmpty)
		So(r.ForCareer(assessmentWith(nil), model.Career{Name: "Unknown"}, "", nil, 3), ShouldBeEmpty)
	})

	Convey("ClampLimit applies default and maximum", t, func() {
		So(ClampLimit(0, MaxLimit), ShouldEqual, DefaultLimit)
		So(ClampLimit(-4, MaxLimit), ShouldEqual, DefaultLimit)
		So(ClampLimit(7, MaxLimit), ShouldEqual, 7)
		So(ClampLimit(50, MaxLimit), ShouldEqual, MaxLimit)
		So(ClampLimit(50, 0), ShouldEqual, MaxLimit)
	})
}

func TestParseOverrides(t *testing.T) {
	Convey("Given raw simulation parameters", t, func() {
		o := ParseOverrides(map[string]string{
			"sleep_hours":      "8",
			"study_hours":      " 2.5 ",
			"shoe_size":        "44",
			"focus_score":      "very",
			"stress_level":     "NaN",
			"exercise_minutes": "+Inf",
			"final_grade":      "90",
		})
		So(o, ShouldResemble, metric.Overrides{
			metric.SleepHours: 8,
			metric.StudyHours: 2.5,
			metric.FinalGrade: 90,
		})
		So(ParseOverrides(nil), ShouldBeEmpty)
	})
}

func TestRankProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)
	r := NewRanker(nil)
	tracked := metric.Tracked()
	careers := Default().Careers()
	courses := []string{"", "Computer Science", "Nursing", "Civil Engineering", "Business Analytics"}

	properties.Property("ordered by current score with gap closure in [0,100]", prop.ForAll(
		func(stored, simulated []float64, careerIdx, courseIdx int) bool {
			vals := make(map[metric.Metric]float64, len(stored))
			for i, v := range stored {
				vals[tracked[i]] = v
			}
			overrides := metric.Overrides{}
			for i, v := range simulated {
				if i%2 == 0 {
					overrides[tracked[i]] = v
				}
			}
			recs := r.ForCareer(assessmentWith(vals), careers[careerIdx], courses[courseIdx], overrides, MaxLimit)
			for i, rec := range recs {
				if rec.GapClosurePercent < 0 || rec.GapClosurePercent > 100 {
					return false
				}
				if rec.WeaknessScore < 0 || rec.WeaknessScore > 1 {
					return false
				}
				if i > 0 && recs[i-1].WeaknessScore < rec.WeaknessScore {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(len(tracked), gen.Float64Range(-10, 200)),
		gen.SliceOfN(len(tracked), gen.Float64Range(-10, 200)),
		gen.IntRange(0, len(careers)-1),
		gen.IntRange(0, len(courses)-1),
	))

	properties.TestingRun(t)
}

// Package matching implements the recommendation engine over the two tagged
// catalogs (remedies and programs). The engine is pure: given the same
// client input and catalogs it always produces the same report, performs no
// I/O, and leaves persisting the result to an explicit save step.
package matching

import (
	"time"

	"praxis/internal/model"
)

// Input is the client side of a matching run. Exclusions are the union of
// permanent contraindications, allergies and the session-scoped temporary
// exclusion list.
type Input struct {
	Exclusions  []string `json:"exclusions"`
	Targets     []string `json:"targets"`
	ProfileTags []string `json:"profileTags"`
}

// Run grades both catalogs against the client input:
//  1. items carrying any excluded tag are removed outright and never
//     re-enter a later grouping
//  2. one group per target tag (exact tag containment)
//  3. one profile group (any-of intersection; empty profile selects nothing)
//  4. one perfect-match group (all targets, plus profile intersection when a
//     profile exists), always a subset of every per-target group
func Run(in Input, remedies []model.Remedy, programs []model.Program, now time.Time) model.MatchReport {
	excluded := toSet(in.Exclusions)

	type candidate struct {
		ref  model.CatalogRef
		tags map[string]struct{}
	}
	items := make([]candidate, 0, len(remedies))
	for _, r := range remedies {
		tags := toSet(r.Tags)
		if intersects(tags, excluded) {
			continue
		}
		items = append(items, candidate{ref: model.CatalogRef{ID: r.ID, Name: r.Name}, tags: tags})
	}
	progs := make([]candidate, 0, len(programs))
	for _, p := range programs {
		tags := toSet(p.Tags)
		if intersects(tags, excluded) {
			continue
		}
		progs = append(progs, candidate{ref: model.CatalogRef{ID: p.ID, Name: p.Name}, tags: tags})
	}

	profile := toSet(in.ProfileTags)

	report := model.MatchReport{RunAt: now}

	for _, target := range in.Targets {
		group := model.TargetGroup{Target: target}
		group.Items = []model.CatalogRef{}
		group.Programs = []model.CatalogRef{}
		for _, c := range items {
			if _, ok := c.tags[target]; ok {
				group.Items = append(group.Items, c.ref)
			}
		}
		for _, c := range progs {
			if _, ok := c.tags[target]; ok {
				group.Programs = append(group.Programs, c.ref)
			}
		}
		report.ByTarget = append(report.ByTarget, group)
	}

	report.ByProfile = model.MatchGroup{Items: []model.CatalogRef{}, Programs: []model.CatalogRef{}}
	if len(profile) > 0 {
		for _, c := range items {
			if intersects(c.tags, profile) {
				report.ByProfile.Items = append(report.ByProfile.Items, c.ref)
			}
		}
		for _, c := range progs {
			if intersects(c.tags, profile) {
				report.ByProfile.Programs = append(report.ByProfile.Programs, c.ref)
			}
		}
	}

	report.PerfectMatch = model.MatchGroup{Items: []model.CatalogRef{}, Programs: []model.CatalogRef{}}
	for _, c := range items {
		if perfect(c.tags, in.Targets, profile) {
			report.PerfectMatch.Items = append(report.PerfectMatch.Items, c.ref)
		}
	}
	for _, c := range progs {
		if perfect(c.tags, in.Targets, profile) {
			report.PerfectMatch.Programs = append(report.PerfectMatch.Programs, c.ref)
		}
	}

	return report
}

// perfect requires every target tag and, when a profile exists, at least one
// profile tag. An empty profile satisfies the profile condition vacuously.
func perfect(tags map[string]struct{}, targets []string, profile map[string]struct{}) bool {
	for _, t := range targets {
		if _, ok := tags[t]; !ok {
			return false
		}
	}
	if len(profile) > 0 && !intersects(tags, profile) {
		return false
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func intersects(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

package model

import "time"

// CatalogRef is the lightweight item reference carried in match groups
type CatalogRef struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// MatchGroup lists the remedies and programs selected by one grouping rule
type MatchGroup struct {
	Items    []CatalogRef `json:"items" bson:"items"`
	Programs []CatalogRef `json:"programs" bson:"programs"`
}

// Empty reports whether the group selected nothing at all
func (g MatchGroup) Empty() bool {
	return len(g.Items) == 0 && len(g.Programs) == 0
}

// TargetGroup is the per-target grouping for one target tag
type TargetGroup struct {
	Target string `json:"target" bson:"target"`
	MatchGroup `bson:",inline"`
}

// MatchReport is the matching engine's full output. It is pure derivation
// state; persisting it as an answer snapshot is a distinct explicit step.
type MatchReport struct {
	ByTarget     []TargetGroup `json:"byTarget" bson:"byTarget"`
	ByProfile    MatchGroup    `json:"byProfile" bson:"byProfile"`
	PerfectMatch MatchGroup    `json:"perfectMatch" bson:"perfectMatch"`
	RunAt        time.Time     `json:"runAt" bson:"runAt"`
}

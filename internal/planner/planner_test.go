package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/photoclean/internal/config"
	"github.com/backmassage/photoclean/internal/index"
	"github.com/backmassage/photoclean/internal/scan"
)

func TestClassify(t *testing.T) {
	ix := index.Build([]scan.FileEntry{
		{RelDir: "foo", Stem: "test", Ext: ".cr2"},
	})

	matched := scan.FileEntry{RelDir: "foo", Stem: "test", Ext: ".jpeg"}
	orphan := scan.FileEntry{RelDir: "foo", Stem: "other", Ext: ".jpeg"}

	assert.Equal(t, Matched, Classify(ix, matched))
	assert.Equal(t, Orphaned, Classify(ix, orphan))
}

func TestBuildPlan_DecisionMatrix(t *testing.T) {
	e := scan.FileEntry{RelDir: "foo", Stem: "test", Ext: ".jpeg"}

	tests := []struct {
		name  string
		mode  config.Mode
		class Classification
		want  Action
	}{
		{"orphans mode deletes orphaned", config.ModeOrphans, Orphaned, ActionDelete},
		{"orphans mode keeps matched", config.ModeOrphans, Matched, ActionKeep},
		{"matched mode deletes matched", config.ModeMatched, Matched, ActionDelete},
		{"matched mode keeps orphaned", config.ModeMatched, Orphaned, ActionKeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan(tt.mode, e, tt.class)
			assert.Equal(t, tt.want, plan.Action)
			assert.Equal(t, tt.class, plan.Class)
			assert.Equal(t, e, plan.Entry)
		})
	}
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "orphaned", Orphaned.String())
}

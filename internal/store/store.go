package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"momentum-cli/internal/model"
)

// SchemaVersion is the persisted envelope version. An envelope with any other
// version is discarded and replaced by the seed document; there is no
// cross-version migration.
const SchemaVersion = 1

const dbFileName = "momentum.sqlite"

// Envelope is the single persisted blob: a version header wrapping the
// whole document.
type Envelope struct {
	Version int             `json:"version"`
	State   *model.Document `json:"state"`
}

type Store struct {
	Dir string
}

func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, ".momentum")
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	return filepath.Join(cwd, ".momentum"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load reads the persisted envelope and returns the document. A missing,
// unparsable, or version-mismatched envelope silently yields the seed
// document; the only errors are environment failures (unwritable dir,
// unopenable database).
func (s Store) Load(ctx context.Context) (*model.Document, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	raw, ok, err := readEnvelopeRow(ctx, db)
	if err != nil {
		return nil, err
	}
	if !ok {
		return Seed(time.Now().UTC()), nil
	}
	return Decode(raw, time.Now().UTC()), nil
}

// Save writes the document back as a fresh envelope. Write-through: callers
// save after every successful mutation.
func (s Store) Save(ctx context.Context, doc *model.Document) error {
	raw, err := Encode(doc)
	if err != nil {
		return err
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return writeEnvelopeRow(ctx, db, raw)
}

// Decode parses an envelope. Corrupt payloads and unknown versions are not
// errors: the caller gets the seed document instead, so the app never starts
// from a broken or empty state.
func Decode(raw []byte, now time.Time) *model.Document {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Seed(now)
	}
	if env.Version != SchemaVersion || env.State == nil {
		return Seed(now)
	}
	Normalize(env.State)
	return env.State
}

func Encode(doc *model.Document) ([]byte, error) {
	return json.Marshal(Envelope{Version: SchemaVersion, State: doc})
}

// Normalize repairs a freshly loaded document in place:
//   - nil collections become empty ones
//   - view-state fields get their defaults
//   - noteOrder is rebuilt (newest first) when absent
//   - done tasks written before completion tracking get CompletedAt backfilled
//     from CreatedAt
//   - a goal is selected when none is but goals exist
func Normalize(d *model.Document) {
	if d.Goals == nil {
		d.Goals = map[string]*model.Goal{}
	}
	if d.GoalOrder == nil {
		d.GoalOrder = []string{}
	}
	if d.Tasks == nil {
		d.Tasks = map[string]*model.Task{}
	}
	if d.Subtasks == nil {
		d.Subtasks = map[string]*model.Subtask{}
	}
	if d.Notes == nil {
		d.Notes = map[string]*model.Note{}
	}
	if d.NoteOrder == nil {
		d.NoteOrder = make([]string, 0, len(d.Notes))
		for id := range d.Notes {
			d.NoteOrder = append(d.NoteOrder, id)
		}
		sort.Slice(d.NoteOrder, func(i, j int) bool {
			a, b := d.Notes[d.NoteOrder[i]], d.Notes[d.NoteOrder[j]]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return d.NoteOrder[i] < d.NoteOrder[j]
		})
	}

	for _, g := range d.Goals {
		if g.TaskIDs == nil {
			g.TaskIDs = []string{}
		}
		if g.ProgressMode == "" {
			g.ProgressMode = model.ProgressAuto
		}
	}
	for _, t := range d.Tasks {
		if t.SubtaskIDs == nil {
			t.SubtaskIDs = []string{}
		}
		if t.Status == model.StatusDone && t.CompletedAt == nil {
			at := t.CreatedAt
			t.CompletedAt = &at
		}
	}

	ui := &d.UI
	if ui.Page == "" {
		ui.Page = model.PageGoals
	}
	if ui.Tab == "" {
		ui.Tab = model.TabAll
	}
	if ui.Sort == "" {
		ui.Sort = model.SortDeadline
	}
	if ui.PriorityFilter == "" {
		ui.PriorityFilter = model.PriorityAll
	}
	if ui.ExpandedTaskIDs == nil {
		ui.ExpandedTaskIDs = []string{}
	}
	if ui.SelectedGoalID == "" && len(d.GoalOrder) > 0 {
		ui.SelectedGoalID = d.GoalOrder[0]
	}
}

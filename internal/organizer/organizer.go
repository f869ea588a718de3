package organizer

import (
	"context"
	"errors"
	"path"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/faizmokh/alloy/internal/config"
	"github.com/faizmokh/alloy/internal/files"
	"github.com/faizmokh/alloy/internal/journal"
	"github.com/faizmokh/alloy/internal/logging"
)

const dateLayout = "2006-01-02"

// Organizer moves daily notes into week folders and copies their dream
// sections into year journals.
type Organizer struct {
	manager  *files.Manager
	settings config.Settings
	log      logrus.FieldLogger
	now      func() time.Time
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithLogger sets the logger used for per-note warnings.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Organizer) {
		o.log = logging.OrDefault(logger)
	}
}

// WithClock replaces time.Now, which decides today's note and the fallback
// journal year.
func WithClock(now func() time.Time) Option {
	return func(o *Organizer) {
		if now != nil {
			o.now = now
		}
	}
}

// New wires an Organizer over the vault.
func New(manager *files.Manager, settings config.Settings, opts ...Option) *Organizer {
	o := &Organizer{
		manager:  manager,
		settings: settings,
		log:      logging.Log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Today is the basename of today's daily note.
func (o *Organizer) Today() string {
	return o.now().Format(dateLayout)
}

// TodayNote is the vault path of today's daily note.
func (o *Organizer) TodayNote() string {
	return files.NotePath(o.settings.DailyNoteFolder, o.Today())
}

// UnorganizedNotes lists the notes sitting directly in the daily note folder,
// oldest first. Today's note is left alone. A missing folder is logged and
// yields no notes.
func (o *Organizer) UnorganizedNotes(ctx context.Context) ([]files.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	notes, err := o.manager.ListNotes(o.settings.DailyNoteFolder)
	if err != nil {
		if errors.Is(err, files.ErrFolderNotFound) {
			o.log.WithField("folder", o.settings.DailyNoteFolder).Error("no daily note folder")
			return nil, nil
		}
		return nil, err
	}

	today := o.Today()
	kept := notes[:0]
	for _, note := range notes {
		if note.Basename() != today {
			kept = append(kept, note)
		}
	}
	sortByDate(kept)
	return kept, nil
}

// DreamEntry returns the dream entry of a note and the journal it belongs in.
// ok is false when the note has no non-empty dream section.
func (o *Organizer) DreamEntry(note files.Note) (entry journal.DreamEntry, journalPath string, ok bool, err error) {
	lines, err := o.manager.ReadLines(note.Path)
	if err != nil {
		return journal.DreamEntry{}, "", false, err
	}

	section := journal.ExtractSection(lines, o.settings.DreamSection, o.settings.SubsectionPrefix)
	entry, ok = journal.NewDreamEntry(o.settings.SubsectionPrefix, note.Basename(), section)
	if !ok {
		return journal.DreamEntry{}, "", false, nil
	}

	year := journal.JournalYear(note.Basename(), o.now())
	return entry, journal.JournalPath(o.settings.DreamJournalFolder, year), true, nil
}

// CopyDreamsToJournal appends the note's dream section to its year journal
// unless an entry with the same title is already there. It reports whether
// anything was appended.
func (o *Organizer) CopyDreamsToJournal(ctx context.Context, note files.Note) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	entry, journalPath, ok, err := o.DreamEntry(note)
	if err != nil || !ok {
		return false, err
	}

	if err := o.manager.EnsureFolder(o.settings.DreamJournalFolder); err != nil {
		return false, err
	}
	if err := o.manager.EnsureFile(journalPath); err != nil {
		return false, err
	}

	existing, err := o.manager.ReadLines(journalPath)
	if err != nil {
		return false, err
	}
	shouldAppend, text := journal.MergeIfAbsent(entry.Title, entry.Lines, existing)
	if !shouldAppend {
		o.log.WithField("note", note.Basename()).Debug("dreams already in journal")
		return false, nil
	}
	if err := o.manager.Append(journalPath, text); err != nil {
		return false, err
	}

	o.log.WithFields(logrus.Fields{"note": note.Basename(), "journal": journalPath}).Info("dreams copied")
	return true, nil
}

// MoveNotesToWeekFolder moves every note into the folder of its week. A note
// that fails is logged and skipped; the rest of the batch still moves.
func (o *Organizer) MoveNotesToWeekFolder(ctx context.Context, notes []files.Note) Report {
	report := Report{Total: len(notes)}
	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, Failure{Note: note.Basename(), Stage: StageMove, Err: err})
			continue
		}
		if err := o.moveNote(note); err != nil {
			o.log.WithField("note", note.Basename()).WithError(err).Warn("error moving note")
			report.Failures = append(report.Failures, Failure{Note: note.Basename(), Stage: StageMove, Err: err})
			continue
		}
		report.Moved++
	}
	return report
}

func (o *Organizer) moveNote(note files.Note) error {
	folder, err := o.weekFolder(note)
	if err != nil {
		return err
	}
	if err := o.manager.EnsureFolder(folder); err != nil {
		return err
	}
	return o.manager.Rename(note.Path, path.Join(folder, note.Name()))
}

func (o *Organizer) weekFolder(note files.Note) (string, error) {
	label, err := journal.WeekLabel(note.Basename())
	if err != nil {
		return "", err
	}
	return journal.WeekFolder(o.settings.DailyNoteFolder, label), nil
}

// Organize copies the dreams of every unorganized note and then moves the
// notes into week folders.
func (o *Organizer) Organize(ctx context.Context) (Report, error) {
	notes, err := o.UnorganizedNotes(ctx)
	if err != nil {
		return Report{}, err
	}

	var dreamFailures []Failure
	copied := 0
	for _, note := range notes {
		ok, err := o.CopyDreamsToJournal(ctx, note)
		if err != nil {
			o.log.WithField("note", note.Basename()).WithError(err).Warn("failed to add dreams")
			dreamFailures = append(dreamFailures, Failure{Note: note.Basename(), Stage: StageDreams, Err: err})
			continue
		}
		if ok {
			copied++
		}
	}

	report := o.MoveNotesToWeekFolder(ctx, notes)
	report.DreamsCopied = copied
	report.Failures = append(dreamFailures, report.Failures...)
	return report, nil
}

// Plan describes what Organize would do without touching the vault.
func (o *Organizer) Plan(ctx context.Context) ([]PlanItem, error) {
	notes, err := o.UnorganizedNotes(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PlanItem, 0, len(notes))
	for _, note := range notes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := PlanItem{Note: note.Basename()}
		target, err := o.weekFolder(note)
		if err != nil {
			item.Err = err
			items = append(items, item)
			continue
		}
		_, journalPath, ok, err := o.DreamEntry(note)
		if err != nil {
			item.Err = err
			items = append(items, item)
			continue
		}
		item.Target, item.Journal, item.HasDreams = target, journalPath, ok
		items = append(items, item)
	}
	return items, nil
}

// sortByDate orders dated notes ascending; other notes follow, by name.
func sortByDate(notes []files.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		di, erri := journal.ParseDate(notes[i].Basename())
		dj, errj := journal.ParseDate(notes[j].Basename())
		switch {
		case erri == nil && errj == nil:
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return notes[i].Name() < notes[j].Name()
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return notes[i].Name() < notes[j].Name()
		}
	})
}

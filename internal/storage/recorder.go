package storage

// Recorder keeps the row of one finished run current. Bullets still in
// flight can score after the hero dies, so the row is updated in place
// instead of inserted again.
type Recorder struct {
	store *Store
	mode  string

	id           int64
	score, level int
}

// NewRecorder returns a recorder for runs of the given mode. A nil store
// turns every Record into a no-op.
func NewRecorder(store *Store, mode string) *Recorder {
	return &Recorder{store: store, mode: mode}
}

// Record inserts the run on its first non-zero score and updates that row afterwards.
func (r *Recorder) Record(score, level int) error {
	if r == nil || r.store == nil || score == 0 {
		return nil
	}
	if r.id == 0 {
		id, err := r.store.SaveScore(r.mode, score, level)
		if err != nil {
			return err
		}
		r.id = id
	} else {
		if score == r.score && level == r.level {
			return nil
		}
		if err := r.store.UpdateScore(r.id, score, level); err != nil {
			return err
		}
	}
	r.score, r.level = score, level
	return nil
}

// Reset forgets the current run; the next Record inserts a new row.
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.id, r.score, r.level = 0, 0, 0
}

package git

// IsTracked reports whether path has an entry in the index, meaning it is
// staged or committed. Directories never have entries of their own.
func (r *Repo) IsTracked(path string) (bool, error) {
	p, err := cleanPath(path)
	if err != nil {
		return false, err
	}
	if p == "" {
		return false, nil
	}

	entries, err := r.indexEntries()
	if err != nil {
		return false, err
	}

	_, ok := entries[p]
	return ok, nil
}

// indexEntries reads the index once. The scan never stages anything, so the
// snapshot stays valid for the lifetime of the Repo.
func (r *Repo) indexEntries() (map[string]struct{}, error) {
	if r.tracked != nil {
		return r.tracked, nil
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, WrapError(err, "failed to read index")
	}

	tracked := make(map[string]struct{}, len(idx.Entries))
	for _, e := range idx.Entries {
		tracked[e.Name] = struct{}{}
	}
	r.tracked = tracked

	return r.tracked, nil
}

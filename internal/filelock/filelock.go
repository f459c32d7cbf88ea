// Package filelock serializes profile mutations across processes.
// Commands that allocate task IDs take the lock so two concurrent adds
// cannot read the same next_id.
package filelock

import "os"

const lockFileMode = 0o600

// Lock takes an exclusive advisory lock on the file at path, creating it
// if needed. It blocks until the lock is available. The returned function
// releases the lock and closes the file.
func Lock(path string) (unlock func() error, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockFileMode) //nolint:gosec // lock file path from trusted source
	if err != nil {
		return nil, err
	}
	if err := lockFile(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := unlockFile(f)
		if closeErr := f.Close(); unlockErr == nil {
			return closeErr
		}
		return unlockErr
	}, nil
}

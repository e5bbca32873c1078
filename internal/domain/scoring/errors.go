package scoring

import "github.com/cockroachdb/errors"

var ErrNoSnapshotAndNoLiveTeam = errors.New("no snapshot and no live team")

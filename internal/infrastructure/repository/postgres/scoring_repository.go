package postgres

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-draft/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-draft/internal/domain/scoring"
	qb "github.com/riskibarqy/fantasy-draft/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

var teamSnapshotSelectColumns = []string{
	"id",
	"user_id",
	"gameweek",
	"season",
	"picks",
	"chip_used",
	"transfers_made",
	"source",
	"captured_at",
	"created_at",
	"updated_at",
	"deleted_at",
}

var userGameweekScoreSelectColumns = []string{
	"id",
	"user_id",
	"gameweek",
	"season",
	"total_points",
	"starting_points",
	"captain_points",
	"vice_captain_points",
	"bench_points",
	"chip_used",
	"chip_points",
	"calculated_at",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) GetSnapshot(ctx context.Context, userID string, gameweek int, season string) (scoring.TeamSnapshot, bool, error) {
	query, args, err := qb.Select(teamSnapshotSelectColumns...).From("team_snapshots").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("gameweek", gameweek),
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scoring.TeamSnapshot{}, false, errors.Wrap(err, "build get team snapshot query")
	}

	var row teamSnapshotTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.TeamSnapshot{}, false, nil
		}
		return scoring.TeamSnapshot{}, false, errors.Wrapf(err, "get team snapshot user=%s gameweek=%d", userID, gameweek)
	}

	item, err := teamSnapshotFromRow(row)
	if err != nil {
		return scoring.TeamSnapshot{}, false, err
	}
	return item, true, nil
}

func (r *ScoringRepository) UpsertSnapshot(ctx context.Context, snapshot scoring.TeamSnapshot) error {
	picks, err := sonic.MarshalString(snapshot.Picks)
	if err != nil {
		return errors.Wrap(err, "encode snapshot picks")
	}

	insertModel := teamSnapshotInsertModel{
		UserID:        snapshot.UserID,
		Gameweek:      snapshot.Gameweek,
		Season:        snapshot.Season,
		Picks:         picks,
		ChipUsed:      string(snapshot.ChipUsed),
		TransfersMade: snapshot.TransfersMade,
		Source:        string(snapshot.Source),
		CapturedAt:    snapshot.CapturedAt,
	}
	query, args, err := qb.InsertModel("team_snapshots", insertModel, `ON CONFLICT (user_id, gameweek, season) WHERE deleted_at IS NULL
DO UPDATE SET
    picks = EXCLUDED.picks,
    chip_used = EXCLUDED.chip_used,
    transfers_made = EXCLUDED.transfers_made,
    source = EXCLUDED.source,
    captured_at = EXCLUDED.captured_at,
    updated_at = NOW()`)
	if err != nil {
		return errors.Wrap(err, "build upsert team snapshot query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upsert team snapshot user=%s gameweek=%d", snapshot.UserID, snapshot.Gameweek)
	}
	return nil
}

func (r *ScoringRepository) ListSnapshotsByUserSeason(ctx context.Context, userID, season string) ([]scoring.TeamSnapshot, error) {
	query, args, err := qb.Select(teamSnapshotSelectColumns...).From("team_snapshots").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list team snapshots query")
	}

	var rows []teamSnapshotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list team snapshots user=%s", userID)
	}

	out := make([]scoring.TeamSnapshot, 0, len(rows))
	for _, row := range rows {
		item, err := teamSnapshotFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *ScoringRepository) GetUserScore(ctx context.Context, userID string, gameweek int, season string) (scoring.UserGameweekScore, bool, error) {
	query, args, err := qb.Select(userGameweekScoreSelectColumns...).From("user_gameweek_scores").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("gameweek", gameweek),
			qb.Eq("season", season),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scoring.UserGameweekScore{}, false, errors.Wrap(err, "build get user score query")
	}

	var row userGameweekScoreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.UserGameweekScore{}, false, nil
		}
		return scoring.UserGameweekScore{}, false, errors.Wrapf(err, "get user score user=%s gameweek=%d", userID, gameweek)
	}

	item, err := userGameweekScoreFromRow(row)
	if err != nil {
		return scoring.UserGameweekScore{}, false, err
	}
	return item, true, nil
}

func (r *ScoringRepository) UpsertUserScore(ctx context.Context, score scoring.UserGameweekScore) error {
	insertModel := userGameweekScoreInsertModel{
		UserID:            score.UserID,
		Gameweek:          score.Gameweek,
		Season:            score.Season,
		TotalPoints:       score.TotalPoints,
		StartingPoints:    score.StartingPoints,
		CaptainPoints:     score.CaptainPoints,
		ViceCaptainPoints: score.ViceCaptainPoints,
		BenchPoints:       score.BenchPoints,
		ChipUsed:          string(score.ChipUsed),
		ChipPoints:        score.ChipPoints,
		CalculatedAt:      score.CalculatedAt,
	}
	query, args, err := qb.InsertModel("user_gameweek_scores", insertModel, `ON CONFLICT (user_id, gameweek, season) WHERE deleted_at IS NULL
DO UPDATE SET
    total_points = EXCLUDED.total_points,
    starting_points = EXCLUDED.starting_points,
    captain_points = EXCLUDED.captain_points,
    vice_captain_points = EXCLUDED.vice_captain_points,
    bench_points = EXCLUDED.bench_points,
    chip_used = EXCLUDED.chip_used,
    chip_points = EXCLUDED.chip_points,
    calculated_at = EXCLUDED.calculated_at,
    updated_at = NOW()`)
	if err != nil {
		return errors.Wrap(err, "build upsert user score query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upsert user score user=%s gameweek=%d", score.UserID, score.Gameweek)
	}
	return nil
}

func (r *ScoringRepository) ListUserScoresByGameweek(ctx context.Context, gameweek int, season string) ([]scoring.UserGameweekScore, error) {
	return r.listUserScores(ctx, "gameweek", "user_id",
		qb.Eq("gameweek", gameweek),
		qb.Eq("season", season),
	)
}

func (r *ScoringRepository) ListUserScoresByUserSeason(ctx context.Context, userID, season string) ([]scoring.UserGameweekScore, error) {
	return r.listUserScores(ctx, "user season", "gameweek",
		qb.Eq("user_id", userID),
		qb.Eq("season", season),
	)
}

func (r *ScoringRepository) listUserScores(ctx context.Context, scope, orderBy string, conds ...qb.Condition) ([]scoring.UserGameweekScore, error) {
	query, args, err := qb.Select(userGameweekScoreSelectColumns...).From("user_gameweek_scores").
		Where(append(conds, qb.IsNull("deleted_at"))...).
		OrderBy(orderBy).
		ToSQL()
	if err != nil {
		return nil, errors.Wrapf(err, "build list user scores by %s query", scope)
	}

	var rows []userGameweekScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "list user scores by %s", scope)
	}

	out := make([]scoring.UserGameweekScore, 0, len(rows))
	for _, row := range rows {
		item, err := userGameweekScoreFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func teamSnapshotFromRow(row teamSnapshotTableModel) (scoring.TeamSnapshot, error) {
	var picks []scoring.SnapshotPick
	if err := sonic.UnmarshalString(row.Picks, &picks); err != nil {
		return scoring.TeamSnapshot{}, errors.Wrapf(err, "decode snapshot picks user=%s gameweek=%d", row.UserID, row.Gameweek)
	}

	item := scoring.TeamSnapshot{
		UserID:        row.UserID,
		Gameweek:      row.Gameweek,
		Season:        row.Season,
		Picks:         picks,
		ChipUsed:      lineup.Chip(row.ChipUsed),
		TransfersMade: row.TransfersMade,
		Source:        scoring.SnapshotSource(row.Source),
		CapturedAt:    row.CapturedAt,
	}
	if err := validRow("team snapshot", item); err != nil {
		return scoring.TeamSnapshot{}, err
	}
	return item, nil
}

func userGameweekScoreFromRow(row userGameweekScoreTableModel) (scoring.UserGameweekScore, error) {
	item := scoring.UserGameweekScore{
		UserID:            row.UserID,
		Gameweek:          row.Gameweek,
		Season:            row.Season,
		TotalPoints:       row.TotalPoints,
		StartingPoints:    row.StartingPoints,
		CaptainPoints:     row.CaptainPoints,
		ViceCaptainPoints: row.ViceCaptainPoints,
		BenchPoints:       row.BenchPoints,
		ChipUsed:          lineup.Chip(row.ChipUsed),
		ChipPoints:        row.ChipPoints,
		CalculatedAt:      row.CalculatedAt,
	}
	if err := validRow("user gameweek score", item); err != nil {
		return scoring.UserGameweekScore{}, err
	}
	return item, nil
}

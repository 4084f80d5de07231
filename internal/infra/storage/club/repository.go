package club

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Arena-BookingService/internal/domain"
	"github.com/m04kA/Arena-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Arena-BookingService/pkg/psqlbuilder"
)

var clubColumns = []string{
	"id",
	"owner_id",
	"name",
	"location",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"price_per_hour",
	"contact_number",
	"approved",
	"created_at",
}

// Repository репозиторий для чтения клубов и видов спорта
// Клубы создаются и одобряются внешним контуром (партнёрский кабинет, админка),
// ядру бронирования нужны только read-операции
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клубов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetApprovedByID получает одобренный клуб по ID вместе со списком видов спорта
// Неодобренные клубы невидимы для ядра бронирования - возвращается ErrClubNotFound
func (r *Repository) GetApprovedByID(ctx context.Context, id int64) (*domain.Club, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clubColumns...).
		From("clubs").
		Where(squirrel.Eq{"id": id, "approved": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedByID - build select query: %v", ErrBuildQuery, err)
	}

	club, err := r.scanClub(executor.QueryRowContext(ctx, query, args...), "GetApprovedByID")
	if err != nil {
		return nil, err
	}

	sports, err := r.getClubSports(ctx, executor, club.ID)
	if err != nil {
		return nil, err
	}
	club.Sports = sports

	return club, nil
}

// ListApproved получает все одобренные клубы (сначала новые) со спортами
func (r *Repository) ListApproved(ctx context.Context) ([]*domain.Club, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clubColumns...).
		From("clubs").
		Where(squirrel.Eq{"approved": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListApproved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clubs := make([]*domain.Club, 0)
	for rows.Next() {
		club, err := r.scanClubRow(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListApproved - rows error: %v", ErrScanRow, err)
	}

	for _, club := range clubs {
		sports, err := r.getClubSports(ctx, executor, club.ID)
		if err != nil {
			return nil, err
		}
		club.Sports = sports
	}

	return clubs, nil
}

// GetSportByID получает вид спорта по ID
func (r *Repository) GetSportByID(ctx context.Context, id int64) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("sports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByID - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &sport.Name)
	if err == sql.ErrNoRows {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSportByID - scan sport: %v", ErrScanRow, err)
	}

	return &sport, nil
}

// getClubSports получает виды спорта клуба через M2M таблицу club_sports
func (r *Repository) getClubSports(ctx context.Context, executor DBExecutor, clubID int64) ([]domain.Sport, error) {
	query, args, err := psqlbuilder.Select("s.id", "s.name").
		From("sports s").
		Join("club_sports cs ON cs.sport_id = s.id").
		Where(squirrel.Eq{"cs.club_id": clubID}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getClubSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getClubSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]domain.Sport, 0)
	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Name); err != nil {
			return nil, fmt.Errorf("%w: getClubSports - scan sport: %v", ErrScanRow, err)
		}
		sports = append(sports, sport)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getClubSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

func (r *Repository) scanClub(row *sql.Row, op string) (*domain.Club, error) {
	var club domain.Club
	var createdAt sql.NullTime

	err := row.Scan(
		&club.ID,
		&club.OwnerID,
		&club.Name,
		&club.Location,
		&club.OpenTime,
		&club.CloseTime,
		&club.SlotDurationMinutes,
		&club.PricePerHour,
		&club.ContactNumber,
		&club.Approved,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClubNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan club: %v", ErrScanRow, op, err)
	}

	club.CreatedAt = createdAt.Time

	return &club, nil
}

func (r *Repository) scanClubRow(rows *sql.Rows) (*domain.Club, error) {
	var club domain.Club
	var createdAt sql.NullTime

	err := rows.Scan(
		&club.ID,
		&club.OwnerID,
		&club.Name,
		&club.Location,
		&club.OpenTime,
		&club.CloseTime,
		&club.SlotDurationMinutes,
		&club.PricePerHour,
		&club.ContactNumber,
		&club.Approved,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scanClubRow - scan club: %v", ErrScanRow, err)
	}

	club.CreatedAt = createdAt.Time

	return &club, nil
}

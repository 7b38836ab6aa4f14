package responses

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/mockinterview/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+interview_responses\s*\(user_id,\s*session_id,\s*question,\s*user_answer,\s*ai_feedback,\s*score,\s*timestamp\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)\s*RETURNING\s+id\s*$`
const countQ = `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+interview_responses\s+WHERE\s+session_id\s*=\s*\$1\s*$`
const listByUserQ = `(?s)^SELECT\s+i\.id,.*FROM\s+interview_responses\s+r\s+JOIN\s+interviews\s+i\s+ON\s+i\.id\s*=\s*r\.session_id\s+WHERE\s+r\.user_id\s*=\s*\$1\s+ORDER\s+BY\s+i\.session_date\s+DESC,\s*i\.id\s+DESC,\s*r\.id\s+ASC\s*$`
const listBySessionQ = `(?s)^SELECT\s+id,.*FROM\s+interview_responses\s+WHERE\s+session_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s+ASC\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	ts := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(insertQ).
		WithArgs(int64(1), int64(2), "Q", "A", "F", 4, ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	rec, err := repo.Create(context.Background(), &models.ResponseRecord{
		UserID: 1, SessionID: 2, Question: "Q", Answer: "A", Feedback: "F", Score: 4, Timestamp: ts,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.ID != 9 {
		t.Fatalf("unexpected id %d", rec.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.ResponseRecord{Score: 1, Timestamp: time.Now()})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCountBySession(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countQ).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountBySession(context.Background(), 2)
	if err != nil {
		t.Fatalf("CountBySession error: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3, got %d", n)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"i.id", "job_title", "session_date", "r.id", "user_id", "question", "user_answer", "ai_feedback", "score", "timestamp"}).
		AddRow(int64(2), "Nurse", day, int64(5), int64(1), "Q1", "A1", "F1", int64(3), day).
		AddRow(int64(2), "Nurse", day, int64(6), int64(1), "Q2", "A2", "F2", int64(5), day)
	mock.ExpectQuery(listByUserQ).WithArgs(int64(1)).WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[1].Response.Question != "Q2" || got[1].Response.SessionID != 2 || got[0].JobTitle != "Nurse" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestListByUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listByUserQ).WithArgs(int64(1)).WillReturnError(errors.New("db err"))

	_, err := repo.ListByUser(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListBySession_RowError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "session_id", "question", "user_answer", "ai_feedback", "score", "timestamp"}).
		AddRow(int64(5), int64(1), int64(2), "Q1", "A1", "F1", int64(3), day).
		RowError(0, errors.New("row boom"))
	mock.ExpectQuery(listBySessionQ).WithArgs(int64(2)).WillReturnRows(rows)

	_, err := repo.ListBySession(context.Background(), 2)
	if err == nil || !regexp.MustCompile(`db error: .*row boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped row error, got %v", err)
	}
}

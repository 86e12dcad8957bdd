package adapters

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type mysqlDreamStore struct {
	logger outbound.LoggerPort
	db     *sqlx.DB
}

func NewMySQLConnection(conf *config.MySQLConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", conf.DSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(conf.MaxOpenConns)
	db.SetMaxIdleConns(conf.MaxIdleConns)
	return db, nil
}

func NewMySQLDreamStore(db *sqlx.DB, logger outbound.LoggerPort) outbound.DreamStorePort {
	return &mysqlDreamStore{
		logger: logger,
		db:     db,
	}
}

// SaveDream creates or updates the dream, inserts the node and its three
// options, all in one transaction.
func (s *mysqlDreamStore) SaveDream(ctx context.Context, params outbound.SaveDreamParams) (*domain.DreamResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, &domain.StoreError{Stage: "begin transaction", Err: err}
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()

	dreamID := params.DreamID
	if dreamID == "" {
		dreamID = uuid.NewString()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO dreams (id, user_id, transcript, created_at) VALUES (?, ?, ?, ?)",
			dreamID, params.UserID, params.Transcript, now)
		if err != nil {
			return nil, &domain.StoreError{Stage: "create dream", Err: err}
		}
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE dreams SET transcript = ? WHERE id = ?",
			params.Transcript, dreamID)
		if err != nil {
			return nil, &domain.StoreError{Stage: "update dream", Err: err}
		}
	}

	node := domain.StoryNode{
		ID:        uuid.NewString(),
		DreamID:   dreamID,
		Content:   params.StoryContent,
		CreatedAt: now,
	}
	var parentID interface{}
	if params.ParentNodeID != "" {
		parentID = params.ParentNodeID
		node.ParentNodeID = &params.ParentNodeID
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO story_nodes (id, dream_id, parent_node_id, content, video_url, created_at) VALUES (?, ?, ?, ?, NULL, ?)",
		node.ID, dreamID, parentID, params.StoryContent, now)
	if err != nil {
		return nil, &domain.StoreError{Stage: "create story node", Err: err}
	}

	options := make([]domain.StoryOption, 0, len(params.Options))
	for _, optionText := range params.Options {
		option := domain.StoryOption{
			ID:          uuid.NewString(),
			StoryNodeID: node.ID,
			OptionText:  optionText,
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO story_options (id, story_node_id, option_text, next_node_id) VALUES (?, ?, ?, NULL)",
			option.ID, node.ID, optionText)
		if err != nil {
			return nil, &domain.StoreError{Stage: "create story options", Err: err}
		}
		options = append(options, option)
	}

	if err := tx.Commit(); err != nil {
		return nil, &domain.StoreError{Stage: "commit", Err: err}
	}

	return &domain.DreamResult{
		DreamID:    dreamID,
		Node:       node,
		Options:    options,
		Transcript: params.Transcript,
	}, nil
}

func (s *mysqlDreamStore) GetRenderedNode(ctx context.Context, nodeID string) (*domain.RenderedNode, error) {
	var node domain.RenderedNode
	err := s.db.GetContext(ctx, &node,
		`SELECT n.id, n.dream_id, d.user_id, n.content, n.video_url
		 FROM story_nodes n JOIN dreams d ON d.id = n.dream_id
		 WHERE n.id = ?`, nodeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNodeNotFound
	}
	if err != nil {
		return nil, &domain.StoreError{Stage: "get story node", Err: err}
	}
	return &node, nil
}

// SetVideoURL is the compare-and-set that makes the first render win: the
// update only matches while video_url is still NULL.
func (s *mysqlDreamStore) SetVideoURL(ctx context.Context, nodeID string, videoURL string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE story_nodes SET video_url = ? WHERE id = ? AND video_url IS NULL",
		videoURL, nodeID)
	if err != nil {
		return false, &domain.StoreError{Stage: "set video url", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, &domain.StoreError{Stage: "set video url", Err: err}
	}
	return affected == 1, nil
}

func (s *mysqlDreamStore) PriorNodeContents(ctx context.Context, dreamID string) ([]string, error) {
	var contents []string
	err := s.db.SelectContext(ctx, &contents,
		"SELECT content FROM story_nodes WHERE dream_id = ? ORDER BY created_at ASC", dreamID)
	if err != nil {
		return nil, &domain.StoreError{Stage: "list prior nodes", Err: err}
	}
	return contents, nil
}

func (s *mysqlDreamStore) ListRecentVideos(ctx context.Context, limit int) ([]domain.RandomVideo, error) {
	var videos []domain.RandomVideo
	err := s.db.SelectContext(ctx, &videos,
		`SELECT video_url, content, created_at FROM story_nodes
		 WHERE video_url IS NOT NULL ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, &domain.StoreError{Stage: "list videos", Err: err}
	}
	return videos, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/valeriy131100/star-burger/internal/domain"
	"github.com/valeriy131100/star-burger/internal/parser"
	"github.com/valeriy131100/star-burger/internal/queue"
	"github.com/valeriy131100/star-burger/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogParser supplies catalog rows from an external spreadsheet.
type CatalogParser interface {
	ParseCatalog(ctx context.Context, spreadsheetID string) (*parser.ParsedCatalog, error)
}

// TransactionRunner executes fn with a context bound to one storage
// transaction; fn returning an error aborts it.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ImportService struct {
	tasks      repo.ImportTaskRepository
	products   repo.ProductRepository
	categories repo.ProductCategoryRepository
	parser     CatalogParser
	broker     queue.Broker
	storage    TransactionRunner
	logger     *zap.SugaredLogger
}

func NewImportService(
	tasks repo.ImportTaskRepository,
	products repo.ProductRepository,
	categories repo.ProductCategoryRepository,
	parser CatalogParser,
	broker queue.Broker,
	storage TransactionRunner,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		tasks:      tasks,
		products:   products,
		categories: categories,
		parser:     parser,
		broker:     broker,
		storage:    storage,
		logger:     logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (primitive.ObjectID, error) {
	task := &domain.ImportTask{
		Status:        domain.ImportStatusQueued,
		SpreadsheetID: spreadsheetID,
		RetryCount:    0,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.CatalogImportMessage{
		TaskID:        task.ID.Hex(),
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueCatalogImport, messageBytes); err != nil {
		_ = s.tasks.UpdateStatus(ctx, task.ID, domain.ImportStatusFailed, err.Error())
		return primitive.NilObjectID, fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("catalog import task created", "task_id", task.ID.Hex(), "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID primitive.ObjectID) (*domain.ImportTask, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return task, nil
}

// ProcessImportTask parses the spreadsheet and applies the catalog changes.
// The category/product upserts and the task completion are committed in one
// transaction so a half-imported catalog is never left behind a completed
// task.
func (s *ImportService) ProcessImportTask(ctx context.Context, taskID primitive.ObjectID) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, "catalog import is not configured")
		return errors.New("catalog import is not configured: no Google credentials")
	}

	// a redelivered message lands here again; keep the attempt count honest
	if task.Status != domain.ImportStatusQueued {
		_ = s.tasks.IncrementRetryCount(ctx, taskID)
	}

	if err := s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing catalog import", "task_id", taskID.Hex())

	catalog, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	// the session-bound context ties every upsert and the completion mark
	// to one transaction
	err = s.storage.WithTransaction(ctx, func(txCtx context.Context) error {
		categoryIDs, err := s.applyCategories(txCtx, catalog.Categories)
		if err != nil {
			return err
		}

		if err := s.applyProducts(txCtx, catalog.Products, categoryIDs); err != nil {
			return err
		}

		if err := s.tasks.Complete(txCtx, taskID, len(catalog.Products), len(catalog.Categories)); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Errorw("failed to apply catalog", "task_id", taskID.Hex(), "error", err)
		_ = s.tasks.UpdateStatus(ctx, taskID, domain.ImportStatusFailed, err.Error())
		return fmt.Errorf("failed to apply catalog: %w", err)
	}

	s.logger.Infow("catalog import completed",
		"task_id", taskID.Hex(),
		"products", len(catalog.Products),
		"categories", len(catalog.Categories),
	)

	return nil
}

// applyCategories upserts categories by name and returns name -> id.
func (s *ImportService) applyCategories(ctx context.Context, names []string) (map[string]primitive.ObjectID, error) {
	ids := make(map[string]primitive.ObjectID, len(names))
	for _, name := range names {
		existing, err := s.categories.GetByName(ctx, name)
		if err == nil {
			ids[name] = existing.ID
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up category %q: %w", name, err)
		}

		category := &domain.ProductCategory{Name: name}
		if err := s.categories.Upsert(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to create category %q: %w", name, err)
		}
		ids[name] = category.ID
	}

	return ids, nil
}

// applyProducts upserts products, matching existing ones by name so a
// re-import updates prices instead of duplicating rows.
func (s *ImportService) applyProducts(ctx context.Context, parsed []parser.ParsedProduct, categoryIDs map[string]primitive.ObjectID) error {
	existing, err := s.products.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	existingByName := make(map[string]primitive.ObjectID, len(existing))
	for _, product := range existing {
		existingByName[product.Name] = product.ID
	}

	for _, row := range parsed {
		product := &domain.Product{
			Name:        row.Name,
			Price:       row.Price,
			Description: row.Description,
			Image:       row.Image,
			Special:     row.Special,
		}
		if id, ok := existingByName[row.Name]; ok {
			product.ID = id
		}
		if categoryID, ok := categoryIDs[row.Category]; ok {
			product.CategoryID = &categoryID
		}

		if err := s.products.Upsert(ctx, product); err != nil {
			return fmt.Errorf("failed to upsert product %q: %w", row.Name, err)
		}
	}

	return nil
}

package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

type taskDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	CreationDate time.Time          `bson:"creationDate"`
	Status       string             `bson:"status"`
	UserID       *string            `bson:"userId"`
}

type TaskRepository struct {
	pagedCollection[taskDocument, domain.Task]
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(collection *mongo.Collection) *TaskRepository {
	return &TaskRepository{
		pagedCollection: pagedCollection[taskDocument, domain.Task]{
			collection: collection,
			fields:     taskFields,
			toDomain:   mapTaskDocumentToDomainTask,
		},
	}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: fieldID, Value: objectID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

// FindAllByID returns the tasks that exist among ids. Ids that are not valid
// ObjectIDs cannot exist and are left out of the result.
func (r *TaskRepository) FindAllByID(ctx context.Context, ids []string) ([]domain.Task, error) {
	objectIDs := make(bson.A, 0, len(ids))
	for _, id := range ids {
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			objectIDs = append(objectIDs, objectID)
		}
	}

	tasks := make([]domain.Task, 0, len(objectIDs))
	if len(objectIDs) == 0 {
		return tasks, nil
	}

	cursor, err := r.collection.Find(ctx, bson.D{{Key: fieldID, Value: bson.D{{Key: "$in", Value: objectIDs}}}})
	if err != nil {
		return nil, err
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocumentToDomainTask(doc))
	}
	return tasks, nil
}

// Save inserts a task without an id and replaces (upserting) one that has
// an id.
func (r *TaskRepository) Save(ctx context.Context, task domain.Task) (domain.Task, error) {
	doc, err := mapDomainTaskToDocument(task)
	if err != nil {
		return domain.Task{}, err
	}

	_, err = r.collection.ReplaceOne(ctx,
		bson.D{{Key: fieldID, Value: doc.ID}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

// SaveAll writes every task in one ordered bulk request. The bulk write
// stops at the first failing model; models before it stay applied.
func (r *TaskRepository) SaveAll(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	if len(tasks) == 0 {
		return []domain.Task{}, nil
	}

	docs := make([]taskDocument, 0, len(tasks))
	models := make([]mongo.WriteModel, 0, len(tasks))
	for _, task := range tasks {
		doc, err := mapDomainTaskToDocument(task)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.D{{Key: fieldID, Value: doc.ID}}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return nil, err
	}

	saved := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		saved = append(saved, mapTaskDocumentToDomainTask(doc))
	}
	return saved, nil
}

func (r *TaskRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	_, err = r.collection.DeleteOne(ctx, bson.D{{Key: fieldID, Value: objectID}})
	return err
}

func (r *TaskRepository) UnassignAll(ctx context.Context, userID string) (domain.UpdateResult, error) {
	result, err := r.collection.UpdateMany(ctx, bson.D{{Key: fieldUserID, Value: userID}}, unsetOwner)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *TaskRepository) UnassignOne(ctx context.Context, userID, taskID string) (domain.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.UpdateResult{}, nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.D{
		{Key: fieldID, Value: objectID},
		{Key: fieldUserID, Value: userID},
	}, unsetOwner)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

var unsetOwner = bson.D{{Key: "$set", Value: bson.D{{Key: fieldUserID, Value: nil}}}}

func mapTaskDocumentToDomainTask(doc taskDocument) domain.Task {
	return domain.Task{
		ID:           doc.ID.Hex(),
		Title:        doc.Title,
		Description:  doc.Description,
		CreationDate: doc.CreationDate.UTC(),
		Status:       domain.TaskStatus(doc.Status),
		UserID:       doc.UserID,
	}
}

func mapDomainTaskToDocument(task domain.Task) (taskDocument, error) {
	doc := taskDocument{
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreationDate,
		Status:       string(task.Status),
		UserID:       task.UserID,
	}

	if task.ID == "" {
		doc.ID = primitive.NewObjectID()
		return doc, nil
	}

	id, err := primitive.ObjectIDFromHex(task.ID)
	if err != nil {
		return taskDocument{}, fmt.Errorf("task id %q is not an ObjectID: %w", task.ID, err)
	}
	doc.ID = id
	return doc, nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/membercore/rbac-member-system/internal/core/domain"
)

const (
	rolesCollection     = "roles"
	userRolesCollection = "user_roles"
)

// RoleRepository persists roles and user-role assignments as separate,
// identifier-keyed collections.
type RoleRepository struct {
	roles       *mongo.Collection
	assignments *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{
		roles:       db.Collection(rolesCollection),
		assignments: db.Collection(userRolesCollection),
	}
}

type roleDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type assignmentDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id"`
	RoleID primitive.ObjectID `bson:"role_id"`
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	doc := roleDoc{
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
	}

	res, err := r.roles.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, errors.New("insert role: unexpected inserted id type")
	}

	created := *role
	created.ID = id.Hex()
	return &created, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var doc roleDoc
	if err := r.roles.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}

	return &domain.Role{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt.UTC(),
	}, nil
}

func (r *RoleRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.roles.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}

// CreateAssignment links a user to a role. A duplicate-key violation on the
// compound (user_id, role_id) index means the assignment already exists and
// is not an error.
func (r *RoleRepository) CreateAssignment(ctx context.Context, userID, roleID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	rid, err := primitive.ObjectIDFromHex(roleID)
	if err != nil {
		return fmt.Errorf("invalid role id %q: %w", roleID, err)
	}

	_, err = r.assignments.InsertOne(ctx, assignmentDoc{UserID: uid, RoleID: rid})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *RoleRepository) ListRoleIDs(ctx context.Context, userID string) ([]string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	cur, err := r.assignments.Find(ctx, bson.M{"user_id": uid})
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc assignmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode assignment: %w", err)
		}
		ids = append(ids, doc.RoleID.Hex())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return ids, nil
}

func (r *RoleRepository) FindNamesByIDs(ctx context.Context, roleIDs []string) ([]string, error) {
	oids := make([]primitive.ObjectID, 0, len(roleIDs))
	for _, id := range roleIDs {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid role id %q: %w", id, err)
		}
		oids = append(oids, oid)
	}

	cur, err := r.roles.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc roleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	return names, nil
}

package games

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrInvalidGame is returned when a game fails validation before persistence.
	ErrInvalidGame = errors.New("invalid game")
	// ErrNotFound is returned when no game matches the requested id.
	ErrNotFound = errors.New("game not found")
	// ErrInvalidID is returned when an id is not a well-formed object id.
	ErrInvalidID = errors.New("invalid game id")
)

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	ReleaseDate string `json:"releaseDate,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so errors match the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the required fields are present.
func (g Game) Validate() error {
	err := validate.Struct(g)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Errorf("%w: %s required", ErrInvalidGame, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrInvalidGame, err)
}

// NewID issues a fresh object id rendered as hex.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// ParseID converts a hex id into an object id.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// ValidateID reports whether id is a well-formed object id.
func ValidateID(id string) error {
	_, err := ParseID(id)
	return err
}

package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/example/campus-scheduler/internal/persistence"
)

// UniversityService manages universities and their rooms and personnel.
type UniversityService struct {
	guard  *DocumentGuard
	logger *slog.Logger
}

// NewUniversityService constructs a UniversityService over a guarded store.
func NewUniversityService(guard *DocumentGuard, logger *slog.Logger) *UniversityService {
	return &UniversityService{guard: guard, logger: defaultLogger(logger)}
}

// CreateUniversity registers a new university and returns it with its
// assigned identifier.
func (s *UniversityService) CreateUniversity(ctx context.Context, name string) (result University, err error) {
	logger := serviceLogger(ctx, s.logger, "UniversityService", "CreateUniversity")
	defer func() {
		if err != nil {
			logger.Error("create university failed", slog.String("error_kind", ErrorKind(err)))
			return
		}
		logger.Info("university created", slog.String("university_id", result.ID))
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		vErr.add("name", "name is required")
	}
	if vErr.HasErrors() {
		return University{}, vErr
	}

	err = s.guard.Update(ctx, func(campus *persistence.Campus) error {
		result = toUniversity(*campus.AddUniversity(name))
		return nil
	})
	if err != nil {
		return University{}, err
	}
	return result, nil
}

// AddRoom adds a room to a university.
func (s *UniversityService) AddRoom(ctx context.Context, input RoomInput) (result Room, err error) {
	logger := serviceLogger(ctx, s.logger, "UniversityService", "AddRoom",
		slog.String("university_id", input.UniversityID))
	defer func() {
		if err != nil {
			logger.Error("add room failed", slog.String("error_kind", ErrorKind(err)))
			return
		}
		logger.Info("room added", slog.String("room_id", result.ID))
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.UniversityID) == "" {
		vErr.add("university_id", "university_id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if strings.TrimSpace(input.Type) == "" {
		vErr.add("room_type", "room_type is required")
	}
	if input.Capacity < 0 {
		vErr.add("capacity", "capacity must not be negative")
	}
	if vErr.HasErrors() {
		return Room{}, vErr
	}

	err = s.guard.Update(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(input.UniversityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		features := lo.Uniq(input.AccessibilityFeatures)
		result = toRoom(*university.AddRoom(input.Name, input.Type, persistence.NewCapacity(input.Capacity), features))
		return nil
	})
	if err != nil {
		return Room{}, err
	}
	return result, nil
}

// AddPersonnel adds a personnel record to a university.
func (s *UniversityService) AddPersonnel(ctx context.Context, input PersonnelInput) (result Personnel, err error) {
	logger := serviceLogger(ctx, s.logger, "UniversityService", "AddPersonnel",
		slog.String("university_id", input.UniversityID))
	defer func() {
		if err != nil {
			logger.Error("add personnel failed", slog.String("error_kind", ErrorKind(err)))
			return
		}
		logger.Info("personnel added", slog.String("personnel_id", result.ID))
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.UniversityID) == "" {
		vErr.add("university_id", "university_id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if strings.TrimSpace(input.Role) == "" {
		vErr.add("role", "role is required")
	}
	if vErr.HasErrors() {
		return Personnel{}, vErr
	}

	err = s.guard.Update(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(input.UniversityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toPersonnel(*university.AddPersonnel(input.Name, input.Role,
			lo.Uniq(input.Specializations), lo.Uniq(input.AccessibilityNeeds)))
		return nil
	})
	if err != nil {
		return Personnel{}, err
	}
	return result, nil
}

// ListUniversities returns every university in the document.
func (s *UniversityService) ListUniversities(ctx context.Context) ([]University, error) {
	var result []University
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		result = make([]University, 0, len(campus.Universities))
		for _, u := range campus.Universities {
			result = append(result, toUniversity(u))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetUniversity resolves a university by id.
func (s *UniversityService) GetUniversity(ctx context.Context, id string) (University, error) {
	var result University
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(id)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toUniversity(*university)
		return nil
	})
	if err != nil {
		return University{}, err
	}
	return result, nil
}

// ListRooms returns the rooms of a university.
func (s *UniversityService) ListRooms(ctx context.Context, universityID string) ([]Room, error) {
	var result []Room
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toRooms(university.Rooms)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetRoom resolves a room by id within a university.
func (s *UniversityService) GetRoom(ctx context.Context, universityID, roomID string) (Room, error) {
	var result Room
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		room, lookupErr := university.Room(roomID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toRoom(*room)
		return nil
	})
	if err != nil {
		return Room{}, err
	}
	return result, nil
}

// ListClasses returns the scheduled classes of a university.
func (s *UniversityService) ListClasses(ctx context.Context, universityID string) ([]Class, error) {
	var result []Class
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toClasses(university.Classes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetClass resolves a class by id within a university.
func (s *UniversityService) GetClass(ctx context.Context, universityID, classID string) (Class, error) {
	var result Class
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		class, lookupErr := university.Class(classID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toClass(*class)
		return nil
	})
	if err != nil {
		return Class{}, err
	}
	return result, nil
}

// ListPersonnel returns the personnel of a university.
func (s *UniversityService) ListPersonnel(ctx context.Context, universityID string) ([]Personnel, error) {
	var result []Personnel
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toPersonnelList(university.Personnel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetPersonnel resolves a personnel record by id within a university.
func (s *UniversityService) GetPersonnel(ctx context.Context, universityID, personnelID string) (Personnel, error) {
	var result Personnel
	err := s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		person, lookupErr := university.Instructor(personnelID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		result = toPersonnel(*person)
		return nil
	})
	if err != nil {
		return Personnel{}, err
	}
	return result, nil
}

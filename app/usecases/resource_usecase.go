package usecases

import (
	"errors"
	"net/http"

	"github.com/mytsparks/Campus-Resource-Hub/app/entities"
	"github.com/mytsparks/Campus-Resource-Hub/app/repositories"
)

type ResourceUsecase interface {
	Create(ownerID int, req entities.ResourceRequest) (entities.Resource, error)
	GetByID(id int) (entities.Resource, error)
	List(category, location string, capacity, page, pageSize int) (entities.ResourceListResponse, error)
	Update(id, actorID int, req entities.ResourceRequest) error
	UpdateStatus(id, actorID int, status string) error
}

type resourceUsecase struct {
	resourceRepo repositories.ResourceRepository
}

func NewResourceUsecase(resourceRepo repositories.ResourceRepository) ResourceUsecase {
	return &resourceUsecase{resourceRepo: resourceRepo}
}

func (u *resourceUsecase) Create(ownerID int, req entities.ResourceRequest) (entities.Resource, error) {
	return u.resourceRepo.Create(ownerID, req)
}

func (u *resourceUsecase) GetByID(id int) (entities.Resource, error) {
	resource, err := u.resourceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Resource{}, &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return entities.Resource{}, err
	}
	return resource, nil
}

func (u *resourceUsecase) List(category, location string, capacity, page, pageSize int) (entities.ResourceListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	resources, total, err := u.resourceRepo.List(category, location, capacity, pageSize, offset)
	if err != nil {
		return entities.ResourceListResponse{}, err
	}

	return entities.ResourceListResponse{
		Message:   "success",
		Data:      resources,
		Page:      page,
		PageSize:  pageSize,
		TotalData: total,
	}, nil
}

// ownedBy guards owner-only mutations. Admins bypass this in the handler
// layer by passing the owner id through.
func (u *resourceUsecase) ownedBy(id, actorID int) (entities.Resource, error) {
	resource, err := u.resourceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return entities.Resource{}, &UseCaseError{Code: http.StatusNotFound, Message: "resource not found"}
		}
		return entities.Resource{}, err
	}
	if resource.OwnerID != actorID {
		return entities.Resource{}, &UseCaseError{Code: http.StatusForbidden, Message: "not the resource owner"}
	}
	return resource, nil
}

func (u *resourceUsecase) Update(id, actorID int, req entities.ResourceRequest) error {
	if _, err := u.ownedBy(id, actorID); err != nil {
		return err
	}
	return u.resourceRepo.Update(id, req)
}

// The resource lifecycle moves forward only: draft -> published ->
// archived. Archiving is terminal.
var resourceStatusTransitions = map[string][]string{
	entities.ResourceStatusDraft:     {entities.ResourceStatusPublished},
	entities.ResourceStatusPublished: {entities.ResourceStatusArchived},
}

func resourceTransitionAllowed(from, to string) bool {
	for _, allowed := range resourceStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (u *resourceUsecase) UpdateStatus(id, actorID int, status string) error {
	resource, err := u.ownedBy(id, actorID)
	if err != nil {
		return err
	}
	if resource.Status == status {
		return nil
	}
	if !resourceTransitionAllowed(resource.Status, status) {
		return &UseCaseError{
			Code:    http.StatusForbidden,
			Message: "cannot change a " + resource.Status + " resource to " + status,
		}
	}
	return u.resourceRepo.UpdateStatus(id, status)
}

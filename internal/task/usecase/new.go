package usecase

import (
	"time"

	"smart-task-manager/internal/task/repository"
	pkgLog "smart-task-manager/pkg/log"
	"smart-task-manager/pkg/parser"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	parser   *parser.Parser
	location *time.Location
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	p *parser.Parser,
	location *time.Location,
) *implUseCase {
	if location == nil {
		location = time.UTC
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   p,
		location: location,
	}
}

// now freezes the reference instant for one operation so the parser and the
// stored timestamps observe the same moment.
func (uc *implUseCase) now() time.Time {
	return time.Now().In(uc.location)
}

package report

import (
	"testing"

	"attareports/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_ListScope(t *testing.T) {
	var p Policy

	assert.Equal(t, int64(0), p.ListScope(string(domain.RoleAdmin), 1))
	assert.Equal(t, int64(0), p.ListScope(string(domain.RoleJefe), 8))
	assert.Equal(t, int64(42), p.ListScope(string(domain.RoleOperador), 42))
}

func TestPolicy_CanModify(t *testing.T) {
	var p Policy

	ownPending := &domain.ServiceReport{TechnicianID: 42, Status: domain.ReportPending}
	ownCompleted := &domain.ServiceReport{TechnicianID: 42, Status: domain.ReportCompleted}
	othersPending := &domain.ServiceReport{TechnicianID: 99, Status: domain.ReportPending}

	assert.NoError(t, p.CanModify(string(domain.RoleOperador), 42, ownPending))
	assert.ErrorIs(t, p.CanModify(string(domain.RoleOperador), 42, ownCompleted), ErrReportLocked)
	assert.ErrorIs(t, p.CanModify(string(domain.RoleOperador), 42, othersPending), ErrNotFound)

	// Privileged roles modify any report in any status.
	assert.NoError(t, p.CanModify(string(domain.RoleJefe), 8, ownCompleted))
	assert.NoError(t, p.CanModify(string(domain.RoleAdmin), 1, othersPending))
}

func TestPolicy_CanSetStatus(t *testing.T) {
	var p Policy

	completed := &domain.ServiceReport{Status: domain.ReportCompleted}
	pending := &domain.ServiceReport{Status: domain.ReportPending}

	assert.ErrorIs(t, p.CanSetStatus(string(domain.RoleJefe), completed, domain.ReportPending), ErrTerminalStatusLock)
	assert.ErrorIs(t, p.CanSetStatus(string(domain.RoleOperador), completed, domain.ReportPending), ErrTerminalStatusLock)
	assert.NoError(t, p.CanSetStatus(string(domain.RoleAdmin), completed, domain.ReportPending))

	// Completion is a supervisor sign-off.
	assert.ErrorIs(t, p.CanSetStatus(string(domain.RoleOperador), pending, domain.ReportCompleted), ErrForbidden)
	assert.NoError(t, p.CanSetStatus(string(domain.RoleJefe), pending, domain.ReportCompleted))
	assert.NoError(t, p.CanSetStatus(string(domain.RoleAdmin), pending, domain.ReportCompleted))
}

func TestPolicy_CreateAndDelete(t *testing.T) {
	var p Policy

	assert.True(t, p.CanCreateCompleted(string(domain.RoleAdmin)))
	assert.True(t, p.CanCreateCompleted(string(domain.RoleJefe)))
	assert.False(t, p.CanCreateCompleted(string(domain.RoleOperador)))

	ownPending := &domain.ServiceReport{TechnicianID: 42, Status: domain.ReportPending}
	ownCompleted := &domain.ServiceReport{TechnicianID: 42, Status: domain.ReportCompleted}
	foreign := &domain.ServiceReport{TechnicianID: 7, Status: domain.ReportPending}

	assert.NoError(t, p.CanDelete(string(domain.RoleAdmin), 1, foreign))
	assert.NoError(t, p.CanDelete(string(domain.RoleJefe), 1, ownCompleted))
	assert.NoError(t, p.CanDelete(string(domain.RoleOperador), 42, ownPending))
	assert.ErrorIs(t, p.CanDelete(string(domain.RoleOperador), 42, ownCompleted), ErrReportLocked)
	assert.ErrorIs(t, p.CanDelete(string(domain.RoleOperador), 42, foreign), ErrNotFound)
}

package report

import "attareports/internal/domain"

// Policy concentrates every role decision for reports in one place. Handlers
// and the service never compare roles directly; they ask the policy.
//
// admin and jefe have full visibility. An operador only ever sees and touches
// reports where they are the assigned technician; anything else behaves as if
// the report did not exist.
type Policy struct{}

func privileged(role string) bool {
	return role == string(domain.RoleAdmin) || role == string(domain.RoleJefe)
}

// ListScope returns the technician id a listing must be restricted to.
// Zero means unrestricted.
func (Policy) ListScope(role string, userID int64) int64 {
	if privileged(role) {
		return 0
	}
	return userID
}

// CanView reports whether the actor may see this report at all. A false
// answer must surface as not-found, never as forbidden.
func (Policy) CanView(role string, userID int64, r *domain.ServiceReport) bool {
	return privileged(role) || r.TechnicianID == userID
}

// CanModify checks write access to an existing report. Order matters: an
// invisible report is ErrNotFound before anything else leaks.
func (p Policy) CanModify(role string, userID int64, r *domain.ServiceReport) error {
	if !p.CanView(role, userID, r) {
		return ErrNotFound
	}
	if !privileged(role) && r.Status == domain.ReportCompleted {
		return ErrReportLocked
	}
	return nil
}

// CanSetStatus validates a status transition on top of CanModify. Completion
// is a sign-off reserved for admin and jefe; an operador files the work and a
// supervisor closes it out.
func (Policy) CanSetStatus(role string, r *domain.ServiceReport, next domain.ReportStatus) error {
	if next == domain.ReportCompleted && !privileged(role) {
		return ErrForbidden
	}
	if r.Status == domain.ReportCompleted && next == domain.ReportPending && role != string(domain.RoleAdmin) {
		return ErrTerminalStatusLock
	}
	return nil
}

// CanReassign reports whether the actor may hand a report to a different
// technician.
func (Policy) CanReassign(role string) bool {
	return privileged(role)
}

// CanCreateCompleted reports whether the actor may file a report that is
// already closed out.
func (Policy) CanCreateCompleted(role string) bool {
	return privileged(role)
}

// CanDelete checks delete access. admin and jefe may remove any report; an
// operador may remove only their own while it is still pending.
func (p Policy) CanDelete(role string, userID int64, r *domain.ServiceReport) error {
	if privileged(role) {
		return nil
	}
	if r.TechnicianID != userID {
		return ErrNotFound
	}
	if r.Status == domain.ReportCompleted {
		return ErrReportLocked
	}
	return nil
}

// CanViewDashboardTotals gates the catalog-wide counters on the dashboard.
func (Policy) CanViewDashboardTotals(role string) bool {
	return privileged(role)
}

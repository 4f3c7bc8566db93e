package audit

import "fmt"

// InvitationEvent records a membership invitation being issued.
type InvitationEvent struct {
	HolographID  string
	InviterID    string
	InviteeEmail string
	Role         string
	Success      bool
	ErrorMessage string
}

func (e InvitationEvent) MessageID() string {
	return "invite"
}

func (e InvitationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s invited %s to holograph %s as %s", e.InviterID, e.InviteeEmail, e.HolographID, e.Role)
	}
	msg := fmt.Sprintf("%s tried to invite %s to holograph %s as %s", e.InviterID, e.InviteeEmail, e.HolographID, e.Role)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e InvitationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e InvitationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e InvitationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.InviterID,
		},
		SDIDSubject: {
			"invitee": e.InviteeEmail,
			"role":    e.Role,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "invite",
			"result":    result,
		},
	}
}

// InvitationResponseEvent records an invitee accepting or declining.
type InvitationResponseEvent struct {
	HolographID  string
	InvitationID string
	UserID       string
	Role         string
	Accepted     bool
}

func (e InvitationResponseEvent) MessageID() string {
	return "invite-response"
}

func (e InvitationResponseEvent) Message() string {
	verb := "declined"
	if e.Accepted {
		verb = "accepted"
	}
	return fmt.Sprintf("%s %s invitation %s to holograph %s as %s", e.UserID, verb, e.InvitationID, e.HolographID, e.Role)
}

func (e InvitationResponseEvent) Severity() Severity {
	return SeverityInfo
}

func (e InvitationResponseEvent) Facility() int {
	return FacilityAuthPriv
}

func (e InvitationResponseEvent) StructuredData() map[string]map[string]string {
	response := "declined"
	if e.Accepted {
		response = "accepted"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"invitation": e.InvitationID,
			"role":       e.Role,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "invite-response",
			"result":    response,
		},
	}
}

// RemovalRequestEvent records a principal asking to remove another principal.
type RemovalRequestEvent struct {
	HolographID  string
	RequesterID  string
	TargetID     string
	Success      bool
	ErrorMessage string
}

func (e RemovalRequestEvent) MessageID() string {
	return "removal-request"
}

func (e RemovalRequestEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s requested removal of principal %s from holograph %s", e.RequesterID, e.TargetID, e.HolographID)
	}
	msg := fmt.Sprintf("%s tried to request removal of principal %s from holograph %s", e.RequesterID, e.TargetID, e.HolographID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RemovalRequestEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RemovalRequestEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RemovalRequestEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.RequesterID,
		},
		SDIDSubject: {
			"target": e.TargetID,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "removal-request",
			"result":    result,
		},
	}
}

// RemovalResponseEvent records the target consenting to or declining
// their own removal.
type RemovalResponseEvent struct {
	HolographID string
	RemovalID   string
	TargetID    string
	Accepted    bool
}

func (e RemovalResponseEvent) MessageID() string {
	return "removal-response"
}

func (e RemovalResponseEvent) Message() string {
	verb := "declined"
	if e.Accepted {
		verb = "accepted"
	}
	return fmt.Sprintf("%s %s removal request %s on holograph %s", e.TargetID, verb, e.RemovalID, e.HolographID)
}

func (e RemovalResponseEvent) Severity() Severity {
	return SeverityInfo
}

func (e RemovalResponseEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RemovalResponseEvent) StructuredData() map[string]map[string]string {
	response := "declined"
	if e.Accepted {
		response = "accepted"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.TargetID,
		},
		SDIDSubject: {
			"removal": e.RemovalID,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "removal-response",
			"result":    response,
		},
	}
}

// OwnershipTransferEvent records the owner handing the holograph to
// another user.
type OwnershipTransferEvent struct {
	HolographID  string
	FromUserID   string
	ToUserID     string
	Success      bool
	ErrorMessage string
}

func (e OwnershipTransferEvent) MessageID() string {
	return "ownership-transfer"
}

func (e OwnershipTransferEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s transferred ownership of holograph %s to %s", e.FromUserID, e.HolographID, e.ToUserID)
	}
	msg := fmt.Sprintf("%s tried to transfer ownership of holograph %s to %s", e.FromUserID, e.HolographID, e.ToUserID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e OwnershipTransferEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e OwnershipTransferEvent) Facility() int {
	return FacilityAuthPriv
}

func (e OwnershipTransferEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.FromUserID,
		},
		SDIDSubject: {
			"new-owner": e.ToUserID,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "ownership-transfer",
			"result":    result,
		},
	}
}

// PermissionChangeEvent records a delegate's section grant being changed.
type PermissionChangeEvent struct {
	HolographID string
	ActorID     string
	DelegateID  string
	SectionID   string
	AccessLevel string
}

func (e PermissionChangeEvent) MessageID() string {
	return "permission"
}

func (e PermissionChangeEvent) Message() string {
	return fmt.Sprintf("%s set %s access on section %s of holograph %s to %s",
		e.ActorID, e.DelegateID, e.SectionID, e.HolographID, e.AccessLevel)
}

func (e PermissionChangeEvent) Severity() Severity {
	return SeverityInfo
}

func (e PermissionChangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PermissionChangeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDActor: {
			"user": e.ActorID,
		},
		SDIDSubject: {
			"delegate": e.DelegateID,
			"section":  e.SectionID,
			"level":    e.AccessLevel,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "set-permission",
		},
	}
}

// KeyGenerationEvent records key material being provisioned for a holograph.
type KeyGenerationEvent struct {
	HolographID  string
	Success      bool
	ErrorMessage string
}

func (e KeyGenerationEvent) MessageID() string {
	return "keygen"
}

func (e KeyGenerationEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("provisioned key material for holograph %s", e.HolographID)
	}
	msg := fmt.Sprintf("failed to provision key material for holograph %s", e.HolographID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e KeyGenerationEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityError
}

func (e KeyGenerationEvent) Facility() int {
	return FacilityAuthPriv
}

func (e KeyGenerationEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": "keygen",
			"result":    result,
		},
	}
}

// RecordAccessEvent records a read or write of an estate record.
type RecordAccessEvent struct {
	HolographID  string
	UserID       string
	SectionID    string
	RecordID     string
	Operation    string // "read", "write", "delete"
	Success      bool
	ErrorMessage string
}

func (e RecordAccessEvent) MessageID() string {
	return "record"
}

func (e RecordAccessEvent) Message() string {
	subject := fmt.Sprintf("section %s of holograph %s", e.SectionID, e.HolographID)
	if e.RecordID != "" {
		subject = fmt.Sprintf("record %s in %s", e.RecordID, subject)
	}
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s", e.UserID, e.Operation, subject)
	}
	msg := fmt.Sprintf("%s was refused %s on %s", e.UserID, e.Operation, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RecordAccessEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RecordAccessEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RecordAccessEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDActor: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"section": e.SectionID,
		},
		SDIDEstate: {
			"holograph": e.HolographID,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.RecordID != "" {
		sd[SDIDSubject]["record"] = e.RecordID
	}
	return sd
}

package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := InvitationEvent{
		HolographID:  "holo-1",
		InviterID:    "user-1",
		InviteeEmail: "delegate@example.com",
		Role:         "delegate",
		Success:      true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "holograph") {
		t.Error("Expected app name 'holograph' in output")
	}
	if !strings.Contains(output, "invite") {
		t.Error("Expected message ID 'invite' in output")
	}
	if !strings.Contains(output, "user-1") {
		t.Error("Expected inviter ID in output")
	}
	if !strings.Contains(output, "delegate@example.com") {
		t.Error("Expected invitee email in output")
	}
	if !strings.Contains(output, "invited") {
		t.Error("Expected success message in output")
	}
}

func TestInvitationEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     InvitationEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful invitation",
			event: InvitationEvent{
				HolographID:  "holo-1",
				InviterID:    "user-1",
				InviteeEmail: "p@example.com",
				Role:         "principal",
				Success:      true,
			},
			wantMsg:   "invited p@example.com",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "invite",
		},
		{
			name: "refused invitation",
			event: InvitationEvent{
				HolographID:  "holo-1",
				InviterID:    "user-2",
				InviteeEmail: "p@example.com",
				Role:         "principal",
				Success:      false,
				ErrorMessage: "authorization denied",
			},
			wantMsg:   "tried to invite",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "invite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestInvitationResponseEvent(t *testing.T) {
	accepted := InvitationResponseEvent{
		HolographID:  "holo-1",
		InvitationID: "inv-1",
		UserID:       "user-3",
		Role:         "delegate",
		Accepted:     true,
	}
	if !strings.Contains(accepted.Message(), "accepted invitation inv-1") {
		t.Errorf("Message() = %q, want to contain 'accepted invitation inv-1'", accepted.Message())
	}

	declined := accepted
	declined.Accepted = false
	if !strings.Contains(declined.Message(), "declined invitation") {
		t.Errorf("Message() = %q, want to contain 'declined invitation'", declined.Message())
	}
	if declined.StructuredData()[SDIDAction]["result"] != "declined" {
		t.Error("Expected action.result 'declined'")
	}
}

func TestRemovalEvents(t *testing.T) {
	request := RemovalRequestEvent{
		HolographID: "holo-1",
		RequesterID: "user-1",
		TargetID:    "user-2",
		Success:     true,
	}
	if request.MessageID() != "removal-request" {
		t.Errorf("MessageID() = %v, want 'removal-request'", request.MessageID())
	}
	if !strings.Contains(request.Message(), "requested removal of principal user-2") {
		t.Errorf("Message() = %q, want removal request text", request.Message())
	}

	response := RemovalResponseEvent{
		HolographID: "holo-1",
		RemovalID:   "rem-1",
		TargetID:    "user-2",
		Accepted:    true,
	}
	if response.MessageID() != "removal-response" {
		t.Errorf("MessageID() = %v, want 'removal-response'", response.MessageID())
	}
	if !strings.Contains(response.Message(), "accepted removal request rem-1") {
		t.Errorf("Message() = %q, want removal response text", response.Message())
	}
}

func TestOwnershipTransferEvent(t *testing.T) {
	event := OwnershipTransferEvent{
		HolographID: "holo-1",
		FromUserID:  "user-1",
		ToUserID:    "user-2",
		Success:     true,
	}

	if event.MessageID() != "ownership-transfer" {
		t.Errorf("MessageID() = %v, want 'ownership-transfer'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "transferred ownership") {
		t.Errorf("Message() = %q, want to contain 'transferred ownership'", event.Message())
	}
	if event.Severity() != SeverityNotice {
		t.Errorf("Severity() = %v, want SeverityNotice", event.Severity())
	}

	failed := event
	failed.Success = false
	failed.ErrorMessage = "not the owner"
	if !strings.Contains(failed.Message(), "tried to transfer ownership") {
		t.Errorf("Message() = %q, want failure text", failed.Message())
	}
	if failed.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want SeverityWarning", failed.Severity())
	}
}

func TestPermissionChangeEvent(t *testing.T) {
	event := PermissionChangeEvent{
		HolographID: "holo-1",
		ActorID:     "user-1",
		DelegateID:  "user-3",
		SectionID:   "vital-documents",
		AccessLevel: "view-only",
	}

	if event.MessageID() != "permission" {
		t.Errorf("MessageID() = %v, want 'permission'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "view-only") {
		t.Errorf("Message() = %q, want to contain access level", event.Message())
	}
	sd := event.StructuredData()
	if sd[SDIDSubject]["section"] != "vital-documents" {
		t.Errorf("StructuredData subject.section = %v, want 'vital-documents'", sd[SDIDSubject]["section"])
	}
}

func TestRecordAccessEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   RecordAccessEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful read",
			event: RecordAccessEvent{
				HolographID: "holo-1",
				UserID:      "user-3",
				SectionID:   "vital-documents",
				RecordID:    "doc-1",
				Operation:   "read",
				Success:     true,
			},
			wantMsg: "performed read on record doc-1",
			wantSev: SeverityInfo,
		},
		{
			name: "denied write",
			event: RecordAccessEvent{
				HolographID:  "holo-1",
				UserID:       "user-3",
				SectionID:    "financial-accounts",
				Operation:    "write",
				Success:      false,
				ErrorMessage: "authorization denied",
			},
			wantMsg: "was refused write",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "record" {
				t.Errorf("MessageID() = %v, want 'record'", tt.event.MessageID())
			}
		})
	}
}

func TestKeyGenerationEvent(t *testing.T) {
	event := KeyGenerationEvent{HolographID: "holo-1", Success: true}

	if event.MessageID() != "keygen" {
		t.Errorf("MessageID() = %v, want 'keygen'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "provisioned key material") {
		t.Errorf("Message() = %q, want to contain 'provisioned key material'", event.Message())
	}

	failed := KeyGenerationEvent{HolographID: "holo-1", Success: false, ErrorMessage: "storage offline"}
	if failed.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want SeverityError", failed.Severity())
	}
}

func TestStructuredData(t *testing.T) {
	event := RecordAccessEvent{
		HolographID: "holo-1",
		UserID:      "user-3",
		SectionID:   "vital-documents",
		RecordID:    "doc-1",
		Operation:   "read",
		Success:     true,
	}

	sd := event.StructuredData()

	if sd[SDIDActor]["user"] != "user-3" {
		t.Errorf("StructuredData actor.user = %v, want 'user-3'", sd[SDIDActor]["user"])
	}
	if sd[SDIDSubject]["record"] != "doc-1" {
		t.Errorf("StructuredData subject.record = %v, want 'doc-1'", sd[SDIDSubject]["record"])
	}
	if sd[SDIDEstate]["holograph"] != "holo-1" {
		t.Errorf("StructuredData estate.holograph = %v, want 'holo-1'", sd[SDIDEstate]["holograph"])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want 'success'", sd[SDIDAction]["result"])
	}
}

func TestAuditToggle(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

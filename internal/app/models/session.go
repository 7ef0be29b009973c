package models

import "medrecord-service/internal/pkg/constvars"

// Session is the acting-user identity resolved by the auth middleware. The
// identity provider that issues tokens and writes session data is external;
// this service only reads it.
type Session struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
	RoleName  string `json:"roleName"`
	PatientID string `json:"patientId,omitempty"`
	DoctorID  string `json:"doctorId,omitempty"`
	FullName  string `json:"fullName,omitempty"`
}

func (s *Session) IsPatient() bool {
	return s.RoleName == constvars.RoleTypePatient
}

func (s *Session) IsDoctor() bool {
	return s.RoleName == constvars.RoleTypeDoctor
}

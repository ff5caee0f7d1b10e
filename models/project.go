// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

package models

import "time"

// ProjectStatus is the lifecycle state of a crafting project.
type ProjectStatus string

// Known project statuses. Transitions are unrestricted: a project may move
// from any status to any other.
const (
	StatusPlanned  ProjectStatus = "planned"
	StatusActive   ProjectStatus = "active"
	StatusFinished ProjectStatus = "finished"
)

// ProjectStatuses returns all known statuses in lifecycle order.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{StatusPlanned, StatusActive, StatusFinished}
}

// IsKnownStatus reports whether status is one of the known project statuses.
func IsKnownStatus(status ProjectStatus) bool {
	switch status {
	case StatusPlanned, StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// Project is a crafting project tracked by a user, optionally referencing a
// pattern and a list of required materials.
type Project struct {
	// ID is the server-assigned unique identifier of the project.
	ID int64 `json:"id"`

	// UserID is the owner of the project. Not exposed via JSON.
	UserID int64 `json:"-"`

	// Name is the display name of the project. Required.
	Name string `json:"name"`

	// Status is the current lifecycle state. Defaults to StatusPlanned.
	Status ProjectStatus `json:"status"`

	// PatternName is an optional reference to the pattern being followed.
	PatternName string `json:"pattern_name,omitempty"`

	// PatternURL is an optional link to the pattern source.
	PatternURL string `json:"pattern_url,omitempty"`

	// Notes is optional free-form text.
	Notes string `json:"notes,omitempty"`

	// Materials lists what the project requires. Populated on single-project
	// reads; omitted from list responses.
	Materials []ProjectMaterial `json:"materials,omitempty"`

	// CreatedAt is set by the server when the project is created.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// UpdatedAt is bumped by the server on every modification,
	// including status changes and material edits.
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectMaterial is a single material requirement of a project.
type ProjectMaterial struct {
	// ID is the server-assigned unique identifier of the requirement.
	ID int64 `json:"id"`

	// ProjectID is the owning project.
	ProjectID int64 `json:"project_id"`

	// SupplyID optionally links the requirement to a concrete inventory
	// supply. When zero, shopping-list matching falls back to Name.
	SupplyID int64 `json:"supply_id,omitempty"`

	// Name is the display name of the required material. Required.
	Name string `json:"name"`

	// Quantity is the amount the project requires, measured in Unit.
	// Must be > 0.
	Quantity float64 `json:"quantity"`

	// Unit is the measurement unit of Quantity. Required.
	Unit string `json:"unit"`
}

// TableName returns the name of the database table
// associated with the ProjectMaterial model.
func (m ProjectMaterial) TableName() string {
	return "project_materials"
}

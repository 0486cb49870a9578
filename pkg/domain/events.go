package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAttach EventType = "attach"
	EventDetach EventType = "detach"
	EventReject EventType = "reject"
)

// MutationEvent describes a child-management request applied by an owner of the tree.
type MutationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Op        string    `json:"op"` // OpAddChild or OpRemoveChild
	ParentID  ID        `json:"parent_id"`
	ChildID   ID        `json:"child_id,omitempty"`
	Err       error     `json:"-"` // Set for EventReject
}

// Hooks defines callbacks for tree observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnAttach func(context.Context, *MutationEvent)
	OnDetach func(context.Context, *MutationEvent)
	OnReject func(context.Context, *MutationEvent)
}

// Fire dispatches e to the callback matching its type.
func (h Hooks) Fire(ctx context.Context, e *MutationEvent) {
	var fn func(context.Context, *MutationEvent)
	switch e.Type {
	case EventAttach:
		fn = h.OnAttach
	case EventDetach:
		fn = h.OnDetach
	case EventReject:
		fn = h.OnReject
	}
	if fn != nil {
		fn(ctx, e)
	}
}

// MergeHooks returns Hooks that call every given hook set in order.
func MergeHooks(all ...Hooks) Hooks {
	return Hooks{
		OnAttach: func(ctx context.Context, e *MutationEvent) {
			for _, h := range all {
				if h.OnAttach != nil {
					h.OnAttach(ctx, e)
				}
			}
		},
		OnDetach: func(ctx context.Context, e *MutationEvent) {
			for _, h := range all {
				if h.OnDetach != nil {
					h.OnDetach(ctx, e)
				}
			}
		},
		OnReject: func(ctx context.Context, e *MutationEvent) {
			for _, h := range all {
				if h.OnReject != nil {
					h.OnReject(ctx, e)
				}
			}
		},
	}
}

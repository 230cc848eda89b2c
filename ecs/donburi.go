package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/glimpse"
)

// InteractionEventType is the Donburi event type for glimpse pointer events.
// Subscribe to this in your ECS systems to receive them.
var InteractionEventType = events.NewEventType[glimpse.InteractionEvent]()

// PaneRef links an entity to the pane bound to it.
type PaneRef struct {
	PaneID uint32
	Name   string
}

// PaneComponent holds the PaneRef of entities created by BindPane.
var PaneComponent = donburi.NewComponentType[PaneRef]()

// DonburiStore is a glimpse.EntityStore backed by a Donburi world.
type DonburiStore struct {
	world    donburi.World
	nextID   uint32
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world:    world,
		entities: make(map[uint32]donburi.Entity),
	}
}

// EmitEvent implements glimpse.EntityStore.
func (s *DonburiStore) EmitEvent(event glimpse.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// BindPane creates an entity carrying a PaneComponent for p and sets
// p.EntityID, so the router reports p's events for that entity. The entity
// is removed when p is disposed. Binding an already bound pane returns its
// entity.
func (s *DonburiStore) BindPane(p *glimpse.Pane) donburi.Entity {
	if e, ok := s.entities[p.EntityID]; ok && p.EntityID != 0 {
		return e
	}
	s.nextID++
	id := s.nextID
	e := s.world.Create(PaneComponent)
	PaneComponent.SetValue(s.world.Entry(e), PaneRef{PaneID: p.ID, Name: p.Name})
	s.entities[id] = e
	p.EntityID = id
	p.Disposed().OnEvent(func(struct{}) {
		s.unbind(id)
	})
	return e
}

// Entity returns the entity for an InteractionEvent's EntityID.
func (s *DonburiStore) Entity(entityID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[entityID]
	return e, ok
}

func (s *DonburiStore) unbind(id uint32) {
	e, ok := s.entities[id]
	if !ok {
		return
	}
	delete(s.entities, id)
	if s.world.Valid(e) {
		s.world.Remove(e)
	}
}

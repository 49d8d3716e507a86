package components

import "github.com/yohamta/donburi"

// DamageEventData queues hits on an entity in delivery order.
type DamageEventData struct {
	Amounts []float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueDamage appends a hit to e's damage queue, creating it if needed.
func QueueDamage(e *donburi.Entry, amount float64) {
	if e.HasComponent(DamageEvent) {
		ev := DamageEvent.Get(e)
		ev.Amounts = append(ev.Amounts, amount)
		return
	}
	donburi.Add(e, DamageEvent, &DamageEventData{Amounts: []float64{amount}})
}

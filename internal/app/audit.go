package app

import (
	"github.com/klokku/agenda/internal/event_bus"
	log "github.com/sirupsen/logrus"
)

// subscribeAuditLog logs every calendar change published on the bus.
func subscribeAuditLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventAdded, func(e event_bus.EventT[event_bus.EventAdded]) error {
		log.WithFields(log.Fields{
			"uid":   e.Data.UID,
			"name":  e.Data.Name,
			"start": e.Data.Start,
		}).Info("event added")
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.CalendarEventsCancelled, func(e event_bus.EventT[event_bus.EventsCancelled]) error {
		log.WithFields(log.Fields{
			"months":    e.Data.Months,
			"weekday":   e.Data.Weekday,
			"cancelled": e.Data.Cancelled,
		}).Info("events cancelled")
		return nil
	})
	event_bus.SubscribeTyped(bus, event_bus.CalendarReloaded, func(e event_bus.EventT[event_bus.Reloaded]) error {
		log.WithFields(log.Fields{
			"source": e.Data.Source,
			"events": e.Data.Events,
		}).Info("calendar reloaded")
		return nil
	})
}

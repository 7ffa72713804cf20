package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[tcell.Key]KeyEvent{}

	c.initDoneEvent(c.events)
	c.initExitEvent(c.events)
}

func (c *Controller) getExitAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		log.Info().Msg("closing todo list view")

		c.app.Stop()

		return key
	}
}

func (c *Controller) initExitEvent(events map[tcell.Key]KeyEvent) {
	events[KeyQ] = KeyEvent{
		Description: "Quit",
		Action:      c.getExitAction(),
	}
}

func (c *Controller) getDoneAction() func(key *tcell.EventKey) *tcell.EventKey {
	return func(key *tcell.EventKey) *tcell.EventKey {
		if c.selected == nil {
			return key
		}

		if err := c.store.MarkDone(c.ctx, c.selected.Name); err != nil {
			log.Warn().Err(err).Msgf("error while marking todo %s done.", c.selected.Name)

			return key
		}

		// the table content shares this pointer, so the view updates on
		// the next draw
		c.selected.Done = true

		return key
	}
}

func (c *Controller) initDoneEvent(events map[tcell.Key]KeyEvent) {
	events[KeyD] = KeyEvent{
		Description: "Mark Done",
		Action:      c.getDoneAction(),
	}
}

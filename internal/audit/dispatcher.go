package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	EntityID uint
	Role     string
	Metadata any
}

// Dispatcher desacopla a gravação da trilha do caminho da requisição: um
// worker consome a fila e a API nunca espera pelo audit.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Role,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar o app)
		log.Println("audit queue full, dropping event")
	}
}

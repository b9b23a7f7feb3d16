package server

import "github.com/prometheus/client_golang/prometheus"

var (
	boardNotesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "noticeboard",
			Subsystem: "board",
			Name:      "notes",
			Help:      "Number of notes on the board.",
		})

	streamNotesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "noticeboard",
			Subsystem: "stream",
			Name:      "notes_total",
			Help:      "Counter of notes sent to author streams.",
		})

	streamAbortedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "noticeboard",
			Subsystem: "stream",
			Name:      "aborted_total",
			Help:      "Counter of author stream producers stopped before the end of the scan.",
		})

	ingestNotesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "noticeboard",
			Subsystem: "ingest",
			Name:      "notes_total",
			Help:      "Counter of AddNotes receives by result.",
		}, []string{"result"})
)

func init() {
	prometheus.MustRegister(boardNotesGauge)
	prometheus.MustRegister(streamNotesCounter)
	prometheus.MustRegister(streamAbortedCounter)
	prometheus.MustRegister(ingestNotesCounter)
}

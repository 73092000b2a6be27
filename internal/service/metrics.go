package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medvault_uploads_total",
		Help: "Images saved.",
	})
	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medvault_upload_bytes_total",
		Help: "Bytes of image data saved.",
	})
	deletesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medvault_deletes_total",
		Help: "Delete requests by result.",
	}, []string{"result"})
	orphanFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medvault_orphan_files_total",
		Help: "Image files left on disk without a record.",
	})
	searchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "medvault_searches_total",
		Help: "Searches served.",
	})
)

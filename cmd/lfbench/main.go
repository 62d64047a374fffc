// Command lfbench drives a configurable producer/consumer workload
// against the queue (spec §8 scenarios S1/S6) and writes an HTML
// throughput report. It exists entirely outside the core package: the
// library itself does no I/O, takes no flags, and logs nothing (spec
// §1, §11).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	lockfree "github.com/daveboutcher/atomic"
	"github.com/daveboutcher/atomic/internal/bitmap"
)

type message struct {
	slot     int
	shutdown bool
}

func main() {
	klog.InitFlags(nil)

	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	perProducer := flag.Int("per-producer", 50000, "messages enqueued by each producer")
	poolSlots := flag.Int("pool-slots", 512, "size of the slot pool tracked in the bitmap")
	capacityHint := flag.Int64("capacity-hint", 0, "advisory queue depth; producers yield past it when > 0")
	reportPath := flag.String("report", "lfbench-report.html", "path to write the HTML throughput report")
	sampleEvery := flag.Duration("sample-every", 20*time.Millisecond, "sampling interval for the queue-depth series")
	flag.Parse()

	klog.InfoS("starting run",
		"producers", *producers, "consumers", *consumers,
		"perProducer", *perProducer, "poolSlots", *poolSlots,
		"capacityHint", *capacityHint)

	bm := bitmap.New(*poolSlots)
	var released uint64

	q := lockfree.NewQueue[message](func(_ any, n *lockfree.Node[message]) {
		_ = n // in a real allocator this is where the node is recycled
	}, nil)
	q.SetCapacityHint(*capacityHint)

	total := int64(*producers) * int64(*perProducer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var depthSamples []float64
	var timeSamples []string
	start := time.Now()
	stopSampling := make(chan struct{})
	samplingDone := make(chan struct{})
	go func() {
		defer close(samplingDone)
		ticker := time.NewTicker(*sampleEvery)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				depthSamples = append(depthSamples, float64(q.Queued()))
				timeSamples = append(timeSamples, time.Since(start).Round(time.Millisecond).String())
			case <-stopSampling:
				return
			}
		}
	}()

	consumerGroup, gctx := errgroup.WithContext(ctx)
	var consumed int64
	for c := 0; c < *consumers; c++ {
		consumerGroup.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				n, ok := q.Dequeue()
				if !ok {
					continue
				}
				if n.Value.shutdown {
					// one sentinel retires exactly one consumer (spec
					// §13's supplemented shutdown feature); the dummy
					// is never reused for this, per spec §9.
					q.ElementRelease(n)
					return nil
				}
				bm.Clear(n.Value.slot)
				q.ElementRelease(n)
				atomic.AddUint64(&released, 1)
				atomic.AddInt64(&consumed, 1)
			}
		})
	}

	producerGroup, pctx := errgroup.WithContext(ctx)
	for p := 0; p < *producers; p++ {
		p := p
		producerGroup.Go(func() error {
			for i := 0; i < *perProducer; i++ {
				select {
				case <-pctx.Done():
					return pctx.Err()
				default:
				}
				if hint := q.CapacityHint(); hint > 0 {
					for q.Queued() > hint {
						time.Sleep(time.Microsecond)
					}
				}
				slot := (p*(*perProducer) + i) % *poolSlots
				bm.Set(slot)
				n := lockfree.NewNode[message]()
				n.Value = message{slot: slot}
				q.Enqueue(n)
			}
			return nil
		})
	}

	if err := producerGroup.Wait(); err != nil {
		klog.ErrorS(err, "producers aborted")
		os.Exit(1)
	}
	klog.InfoS("producers finished, sending shutdown sentinels", "count", *consumers)
	for c := 0; c < *consumers; c++ {
		sentinel := lockfree.NewSentinel[message]()
		sentinel.Value = message{shutdown: true}
		q.Enqueue(sentinel)
	}

	if err := consumerGroup.Wait(); err != nil {
		klog.ErrorS(err, "consumers aborted")
		os.Exit(1)
	}
	close(stopSampling)
	<-samplingDone

	elapsed := time.Since(start)
	klog.InfoS("run complete",
		"elapsed", elapsed,
		"consumed", atomic.LoadInt64(&consumed),
		"released", atomic.LoadUint64(&released),
		"bitmapClear", bm.AllClear(),
		"queueEmpty", q.Empty())
	if total != atomic.LoadInt64(&consumed) {
		klog.InfoS("note: consumed differs from producers*perProducer", "total", total)
	}

	if err := writeReport(*reportPath, timeSamples, depthSamples, elapsed, atomic.LoadInt64(&consumed)); err != nil {
		klog.ErrorS(err, "failed to write report")
		os.Exit(1)
	}
	klog.InfoS("report written", "path", *reportPath)
}

func writeReport(path string, xs []string, ys []float64, elapsed time.Duration, consumed int64) error {
	items := make([]opts.LineData, len(ys))
	for i, y := range ys {
		items[i] = opts.LineData{Value: y}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "lfbench queue depth",
			Subtitle: fmt.Sprintf("%d messages in %s", consumed, elapsed.Round(time.Millisecond)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "elapsed"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Queued() upper bound"}),
	)
	line.SetXAxis(xs).AddSeries("queue depth", items)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

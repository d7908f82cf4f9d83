package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When creating with an isolated registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithRegistry(registry),
				WithNamespace("test"),
				WithRunsBuckets([]float64{0, 2, 4, 8}),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When options carry zero values", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithRegistry(registry),
				WithNamespace(""),
				WithRunsBuckets(nil),
			)

			Convey("Then defaults should be kept", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "fungo")
				So(manager.runsBuckets, ShouldNotBeEmpty)
			})
		})
	})
}

func TestRecordingHelpers(t *testing.T) {
	Convey("Given the global metrics helpers", t, func() {
		Convey("When recording simulation throughput", func() {
			So(func() {
				RecordGameSimulated(0)
				RecordGameSimulated(4)
				RecordGameSimulated(13)
				RecordLineupEvaluated()
				RecordPlateAppearance("HR")
				RecordPlateAppearance("SO")
				RecordPlateAppearance("BB")
			}, ShouldNotPanic)
		})

		Convey("When updating operational gauges", func() {
			So(func() {
				AddWorkerActive(1)
				AddWorkerActive(1)
				AddWorkerActive(-2)
				UpdateSweepProgress(0, 362880)
				UpdateSweepProgress(1000, 362880)
			}, ShouldNotPanic)
		})

		Convey("When recording errors by component", func() {
			So(func() {
				RecordSimulationError("runner")
				RecordSimulationError("leaderboard")
				RecordSimulationError("")
			}, ShouldNotPanic)
		})

		Convey("When serving the registry", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}

func TestRecordingConcurrency(t *testing.T) {
	Convey("Given concurrent metric writers", t, func() {
		done := make(chan bool, 8)

		for i := 0; i < 8; i++ {
			go func() {
				for j := 0; j < 500; j++ {
					RecordGameSimulated(j % 12)
					RecordPlateAppearance("GO")
					UpdateSweepProgress(j, 500)
				}
				done <- true
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}

		Convey("Then concurrent access should not panic", func() {
			So(true, ShouldBeTrue)
		})
	})
}

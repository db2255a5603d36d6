package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Ri4dH/EcoTrack/internal/estimator"
	model "github.com/Ri4dH/EcoTrack/internal/models"
	"github.com/Ri4dH/EcoTrack/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- doublures ---

type stubEstimator struct {
	resp    *estimator.Response
	err     error
	lastReq estimator.Request
}

func (s *stubEstimator) Estimate(_ context.Context, req estimator.Request) (*estimator.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

type stubRouter struct {
	estimate model.RouteEstimate
	calls    int
}

func (s *stubRouter) Resolve(_ context.Context, _, _ model.Coordinate, _ routing.Mode) model.RouteEstimate {
	s.calls++
	return s.estimate
}

type spyStore struct {
	appended []model.ActionRecord
	history  []model.ActionRecord
}

func (s *spyStore) Append(_ context.Context, rec *model.ActionRecord) error {
	s.appended = append(s.appended, *rec)
	s.history = append(s.history, *rec)
	return nil
}

func (s *spyStore) History(_ context.Context, _ string) ([]model.ActionRecord, error) {
	return s.history, nil
}

func fptr(v float64) *float64 { return &v }

func okEstimator(kg float64) *stubEstimator {
	return &stubEstimator{resp: &estimator.Response{Action: "bike_trip", Co2SavedKg: &kg, Message: "Nice!"}}
}

// --- tests ---

func TestSubmit_HappyPathPersistsBothUnits(t *testing.T) {
	store := &spyStore{}
	sub := NewSubmission(okEstimator(2), &stubRouter{}, store)

	resp, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{
		Action:        model.ActionBikeTrip,
		DistanceMiles: fptr(3),
	})

	require.NoError(t, err)
	require.Len(t, store.appended, 1)
	rec := store.appended[0]
	assert.Equal(t, 2.0, rec.Co2SavedKg)
	require.NotNil(t, rec.Co2SavedLb)
	assert.InDelta(t, 4.40924, *rec.Co2SavedLb, 1e-9)
	require.NotNil(t, rec.DistanceMiles)
	assert.Equal(t, 3.0, *rec.DistanceMiles)
	require.NotNil(t, rec.DistanceKm)
	assert.InDelta(t, 4.828, *rec.DistanceKm, 1e-2)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Nice!", rec.Message)

	// Les stats reviennent recalculées depuis l'historique
	assert.InDelta(t, 4.40924, resp.Stats.TotalCo2SavedLb, 1e-9)
	assert.Equal(t, 1, resp.Stats.TotalActions)
}

func TestSubmit_NonNumericEstimateNeverPersists(t *testing.T) {
	store := &spyStore{}
	est := &stubEstimator{resp: &estimator.Response{Action: "recycled", Co2SavedKg: nil}}
	sub := NewSubmission(est, &stubRouter{}, store)

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{Action: model.ActionRecycled})

	require.Error(t, err)
	assert.Empty(t, store.appended, "rien ne doit être persisté (fail closed)")
}

func TestSubmit_NaNEstimateNeverPersists(t *testing.T) {
	store := &spyStore{}
	sub := NewSubmission(okEstimator(math.NaN()), &stubRouter{}, store)

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{Action: model.ActionRecycled})

	require.Error(t, err)
	assert.Empty(t, store.appended)
}

func TestSubmit_EstimatorErrorNeverPersists(t *testing.T) {
	store := &spyStore{}
	est := &stubEstimator{err: &estimator.Error{Category: estimator.CategoryTimeout, Err: errors.New("deadline")}}
	sub := NewSubmission(est, &stubRouter{}, store)

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{Action: model.ActionRecycled})

	require.Error(t, err)
	var estErr *estimator.Error
	assert.ErrorAs(t, err, &estErr, "la catégorie d'erreur doit remonter intacte")
	assert.Empty(t, store.appended)
}

func TestSubmit_UnknownActionRejected(t *testing.T) {
	store := &spyStore{}
	sub := NewSubmission(okEstimator(1), &stubRouter{}, store)

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{Action: "drove_suv"})

	require.Error(t, err)
	assert.Empty(t, store.appended)
}

func TestSubmit_TripWithoutDistanceOrCoordinatesRejected(t *testing.T) {
	store := &spyStore{}
	sub := NewSubmission(okEstimator(1), &stubRouter{}, store)

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{Action: model.ActionWalkTrip})

	require.Error(t, err)
	assert.Empty(t, store.appended)
}

func TestSubmit_ProvidedDistanceSkipsRouter(t *testing.T) {
	router := &stubRouter{}
	sub := NewSubmission(okEstimator(1), router, &spyStore{})

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{
		Action:     model.ActionWalkTrip,
		DistanceKm: fptr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, router.calls)
}

func TestSubmit_CoordinatesGoThroughRouter(t *testing.T) {
	router := &stubRouter{estimate: model.RouteEstimate{
		Miles:  1.2,
		Source: model.RouteSourceStraightLine,
	}}
	est := okEstimator(0.4)
	sub := NewSubmission(est, router, &spyStore{})

	resp, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{
		Action:      model.ActionBikeTrip,
		Origin:      &model.Coordinate{Lat: 48.8566, Lng: 2.3522},
		Destination: &model.Coordinate{Lat: 48.8606, Lng: 2.3376},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, router.calls)
	require.NotNil(t, resp.Route)
	assert.Equal(t, model.RouteSourceStraightLine, resp.Route.Source)
	require.NotNil(t, est.lastReq.DistanceKm)
	assert.InDelta(t, 1.931, *est.lastReq.DistanceKm, 1e-2)
}

func TestSubmit_NonTripActionsIgnoreDistance(t *testing.T) {
	router := &stubRouter{}
	est := okEstimator(0.5)
	sub := NewSubmission(est, router, &spyStore{})

	_, err := sub.Submit(context.Background(), "u1", model.SubmitActionRequest{
		Action:    model.ActionRecycled,
		Materials: []string{"plastic", "glass"},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, router.calls)
	assert.Nil(t, est.lastReq.DistanceKm)
	assert.Equal(t, []string{"plastic", "glass"}, est.lastReq.Materials)
}

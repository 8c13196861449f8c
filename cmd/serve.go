package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/movements/chord"
	"github.com/jsphweid/movements/instrument"
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/rs/cors"
)

type server struct {
	inst *instrument.Instrument
}

// NewRouter exposes the instrument over HTTP so that any touch surface that
// can post JSON can play it.
func NewRouter(inst *instrument.Instrument) http.Handler {
	s := &server{inst: inst}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/touch", s.handleTouch).Methods("POST")
	router.HandleFunc("/motion", s.handleMotion).Methods("POST")
	router.HandleFunc("/state", s.handleState).Methods("GET")
	router.HandleFunc("/scales", handleScales).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("http: encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *server) handleTouch(w http.ResponseWriter, r *http.Request) {
	var input model.TouchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return
	}
	if input.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required")
		return
	}

	res, err := s.inst.Touch(r.Context(), input.Address, input.Value)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.TouchResponse{
		EventId:  res.EventID,
		Button:   res.Button.String(),
		Pressed:  res.Pressed,
		Chord:    model.Ints(res.Chord),
		ChordKey: chord.CreateChordKey(res.Chord),
	})
}

func (s *server) handleMotion(w http.ResponseWriter, r *http.Request) {
	var input model.MotionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not parse request body: "+err.Error())
		return
	}
	s.inst.Motion(input.X, input.Y, input.Z)
	w.WriteHeader(http.StatusAccepted)
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.inst.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	st := snap.State
	res := model.StateResponse{
		Key:          [7]int(st.Key),
		KeyRoot:      int(st.KeyRoot),
		Scale:        st.Scale.String(),
		ScaleRoot:    int(st.ScaleRoot),
		PivotPitch:   int(st.PivotPitch),
		BassNote:     int(st.BassNote),
		ChordNumeral: st.ChordNumeral,
		OnChordLock:  st.OnChordLock,
		OffChordLock: st.OffChordLock,
		Alternate:    st.Alternate,
		Dominant:     st.Dominant,
		FamilyUp:     st.FamilyUp,
		FamilyDown:   st.FamilyDown,
		FamilyAcross: st.FamilyAcross,
		EightChord:   st.EightChord,
		LastButton:   st.LastButton.String(),
		LastChord:    model.Ints(st.LastChord),
		ButtonsHeld:  st.ButtonsHeld,
		Decaying:     snap.Decaying,
		EventId:      snap.EventID,
	}
	if m := snap.Motion; m != nil {
		res.Motion = &[3]float64{m.X, m.Y, m.Z}
	}
	writeJSON(w, http.StatusOK, res)
}

func scaleResponses() []model.ScaleResponse {
	res := make([]model.ScaleResponse, 0, len(scale.All()))
	for _, s := range scale.All() {
		moves := make(map[string]model.MoveResponse, len(scale.Directions))
		for _, d := range scale.Directions {
			step := scale.Move(s, d)
			moves[d.String()] = model.MoveResponse{Scale: step.Scale.String(), RootDelta: int(step.RootDelta)}
		}
		res = append(res, model.ScaleResponse{
			Name:     s.String(),
			Family:   s.Family().String(),
			Rotation: s.Rotation().String(),
			Degrees:  [8]int(s.Degrees()),
			Moves:    moves,
		})
	}
	return res
}

func handleScales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scaleResponses())
}

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/abcsmith/assemble"
	"github.com/jsphweid/abcsmith/bar"
	"github.com/jsphweid/abcsmith/constants"
	"github.com/jsphweid/abcsmith/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves /assemble and /validate over HTTP on $ADDR.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := constants.Load()
		cobra.CheckErr(err)
		serve(cfg.Addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	res := model.ErrorResponse{Error: err.Error()}

	var mismatch *bar.BarMismatchError
	var unknown *assemble.UnknownSectionError
	var sectionErr *assemble.SectionError
	var injErr *assemble.InjectionError
	switch {
	case errors.As(err, &mismatch):
		res.Section = mismatch.Section
	case errors.As(err, &unknown):
		res.Section = unknown.Name
	case errors.As(err, &sectionErr):
		res.Section = sectionErr.Section
	case errors.As(err, &injErr):
		res.Section = injErr.Section
	}
	writeJSON(w, status, res)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (model.AssembleRequest, bool) {
	var input model.AssembleRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return input, false
	}
	input.Header = input.Header.WithDefaults()
	return input, true
}

func HandleAssemble(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	a := assemble.Assembler{CountChords: input.CountChords}
	doc, err := a.Assemble(input.Instrument, input.Sections, input.Structure, input.Header)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AssembleResponse{Document: doc})
}

func HandleValidate(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	a := assemble.Assembler{CountChords: input.CountChords}
	results, err := a.Report(input.Sections, input.Header)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ValidateResponse{Results: results})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/assemble", HandleAssemble).Methods("POST")
	router.HandleFunc("/validate", HandleValidate).Methods("POST")
	return cors.Default().Handler(router)
}

func serve(addr string) {
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, NewRouter()))
}

// Package api provides the REST API server for the interval library
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/james-see/interval/pkg/converter"
	"github.com/james-see/interval/pkg/theory"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Interval API
// @version 1.0
// @description API for parsing and naming musical pitches and intervals
// @host localhost:8080
// @BasePath /api/v1

// PitchResponse describes a pitch
type PitchResponse struct {
	Notename   string  `json:"notename"`
	Octave     int     `json:"octave"`
	Accidental int     `json:"accidental"`
	Semitone   int     `json:"semitone"`
	ShortName  string  `json:"short_name"`
	LongName   string  `json:"long_name,omitempty"`
	NameError  string  `json:"long_name_error,omitempty"`
	MIDINote   *uint8  `json:"midi_note,omitempty"`
	Frequency  float64 `json:"frequency"`
}

// IntervalResponse describes an interval
type IntervalResponse struct {
	Direction int    `json:"direction"`
	Octave    int    `json:"octave"`
	Number    int    `json:"number"`
	Mod       int    `json:"mod"`
	Semitones int    `json:"semitones"`
	ShortName string `json:"short_name"`
	LongName  string `json:"long_name"`
}

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return NewRouter().Run(fmt.Sprintf(":%d", port))
}

// NewRouter builds the gin engine with all routes registered
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/pitches/:token", handlePitch)
		v1.GET("/semitones/:n/pitch", handlePitchFromInteger)
		v1.GET("/intervals/:token", handleInterval)
		v1.GET("/semitones/:n/interval", handleIntervalFromInteger)
		v1.GET("/between", handleBetween)
		v1.POST("/convert/text2midi", handleTextToMIDI)
		v1.POST("/convert/midi2text", handleMIDIToText)
		v1.GET("/formats", listFormats)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, theory.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, theory.ErrOutOfDomain):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func describePitch(p theory.Pitch) PitchResponse {
	resp := PitchResponse{
		Notename:   string(p.Notename()),
		Octave:     p.Octave(),
		Accidental: p.Accidental(),
		Semitone:   p.Semitone(),
		ShortName:  p.ShortName(),
		Frequency:  p.Frequency(),
	}
	if name, err := p.LongName(); err == nil {
		resp.LongName = name
	} else {
		resp.NameError = err.Error()
	}
	if key, err := p.MIDINote(); err == nil {
		resp.MIDINote = &key
	}
	return resp
}

func describeInterval(iv theory.Interval) (IntervalResponse, error) {
	name, err := iv.LongName()
	if err != nil {
		return IntervalResponse{}, err
	}
	return IntervalResponse{
		Direction: int(iv.Direction()),
		Octave:    iv.Octave(),
		Number:    iv.Number(),
		Mod:       iv.Mod(),
		Semitones: iv.Semitones(),
		ShortName: iv.ShortName(),
		LongName:  name,
	}, nil
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "interval",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns the file formats the converter reads and writes
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"text", "midi"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// handlePitch godoc
// @Summary Parse a pitch token
// @Description Parses a token such as c#' and returns its fields and names
// @Tags pitch
// @Produce json
// @Param token path string true "Pitch token"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/pitches/{token} [get]
func handlePitch(c *gin.Context) {
	p, err := theory.ParsePitch(c.Param("token"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, describePitch(p))
}

// handlePitchFromInteger godoc
// @Summary Spell a semitone value
// @Description Spells a semitone value (48 is the reference c) as a pitch
// @Tags pitch
// @Produce json
// @Param n path int true "Semitone value"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/semitones/{n}/pitch [get]
func handlePitchFromInteger(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semitone must be an integer"})
		return
	}
	c.JSON(http.StatusOK, describePitch(theory.PitchFromInteger(n)))
}

// handleInterval godoc
// @Summary Parse an interval token
// @Description Parses a token such as M3 or -p5 and returns its fields and names
// @Tags interval
// @Produce json
// @Param token path string true "Interval token"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/intervals/{token} [get]
func handleInterval(c *gin.Context) {
	iv, err := theory.ParseInterval(c.Param("token"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp, err := describeInterval(iv)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleIntervalFromInteger godoc
// @Summary Spell a semitone count
// @Description Spells a signed semitone count as an interval
// @Tags interval
// @Produce json
// @Param n path int true "Semitone count"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/semitones/{n}/interval [get]
func handleIntervalFromInteger(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semitones must be an integer"})
		return
	}
	resp, err := describeInterval(theory.IntervalFromInteger(n))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleBetween godoc
// @Summary Interval between two pitches
// @Description Returns the interval from one pitch token to another
// @Tags interval
// @Produce json
// @Param from query string true "Starting pitch token"
// @Param to query string true "Target pitch token"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/between [get]
func handleBetween(c *gin.Context) {
	from, err := theory.ParsePitch(c.Query("from"))
	if err != nil {
		abortWithError(c, fmt.Errorf("from: %w", err))
		return
	}
	to, err := theory.ParsePitch(c.Query("to"))
	if err != nil {
		abortWithError(c, fmt.Errorf("to: %w", err))
		return
	}
	resp, err := describeInterval(theory.Between(from, to))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleTextToMIDI godoc
// @Summary Convert pitch tokens to MIDI
// @Description Upload a text file of pitch tokens and receive a MIDI file
// @Tags convert
// @Accept multipart/form-data
// @Produce audio/midi
// @Param file formData file true "Text file to convert"
// @Param tempo query number false "Tempo in BPM (default: 120)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/text2midi [post]
func handleTextToMIDI(c *gin.Context) {
	data, name, ok := readUpload(c)
	if !ok {
		return
	}

	tempo, err := strconv.ParseFloat(c.DefaultQuery("tempo", "120"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tempo must be a number"})
		return
	}

	result, err := converter.New(tempo).TextToMIDI(data)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(name, ".mid")))
	c.Data(http.StatusOK, "audio/midi", result)
}

// handleMIDIToText godoc
// @Summary Convert MIDI to pitch tokens
// @Description Upload a MIDI file and receive its note starts as pitch tokens
// @Tags convert
// @Accept multipart/form-data
// @Produce plain
// @Param file formData file true "MIDI file to convert"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/midi2text [post]
func handleMIDIToText(c *gin.Context) {
	data, name, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := converter.New(converter.DefaultTempo).MIDIToText(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName(name, ".txt")))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", result)
}

func readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return nil, "", false
	}
	return data, header.Filename, true
}

func outputName(input, ext string) string {
	if i := strings.LastIndex(input, "."); i > 0 {
		return input[:i] + ext
	}
	return "converted" + ext
}

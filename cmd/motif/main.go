// Command motif runs a point-set pattern discovery algorithm on a CSV input
// file and writes the discovered patterns to batched JSON output files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quaverkit/motif"
)

var (
	algoName  = flag.String("algo", "", "algorithm to run [SIA, SIAR, SIATEC, SIATEC-C, SIATEC-CH, COSIATEC, SIATEC-COMPRESS]")
	innerName = flag.String("inner", "SIATEC", "inner TEC algorithm for COSIATEC and SIATEC-COMPRESS [SIATEC, SIATEC-C, SIATEC-CH]")
	inputPath = flag.String("input", "", "path to the input .csv file")
	outputDir = flag.String("output", "", "output directory for JSON files (/dev/null to skip writing)")
	pieceName = flag.String("piece", "", "name of the piece the input represents")
	batchSize = flag.Int("batch-size", 100, "number of patterns written to the same output file")
	window    = flag.Int("r", 3, "number of subdiagonals (applies only to SIAR)")
	maxIOI    = flag.Float64("max-ioi", 10.0, "maximum inter-onset interval (applies only to SIATEC-C and SIATEC-CH)")
)

// outputWriter accumulates discovered TECs and flushes them to numbered JSON
// files once a batch fills up. With the output directory set to /dev/null it
// only counts, which keeps profiling runs free of file writes.
type outputWriter struct {
	algorithm   string
	piece       string
	dir         string
	batch       []motif.Tec[motif.Point2D]
	batchNumber int
	batchSize   int
	outputCount int
}

func (w *outputWriter) outputMtp(mtp motif.Mtp[motif.Point2D]) {
	w.outputTec(motif.Tec[motif.Point2D]{
		Pattern:     mtp.Pattern,
		Translators: []motif.Point2D{mtp.Translator},
	})
}

func (w *outputWriter) outputTec(tec motif.Tec[motif.Point2D]) {
	w.batch = append(w.batch, tec)
	if len(w.batch) >= w.batchSize {
		w.flush()
	}
}

func (w *outputWriter) flush() {
	if len(w.batch) == 0 {
		return
	}

	if w.dir != os.DevNull {
		name := fmt.Sprintf("patterns_%s_%s_%d.json", w.piece, w.algorithm, w.batchNumber)
		path := filepath.Join(w.dir, name)

		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			os.Exit(1)
		}

		err = motif.WriteTecsJSON(file, w.piece, w.algorithm, w.batch)
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output file: %v\n", err)
			os.Exit(1)
		}
	}

	w.outputCount += len(w.batch)
	w.batch = w.batch[:0]
	w.batchNumber++
}

func main() {
	flag.Parse()

	if *algoName == "" || *inputPath == "" || *outputDir == "" || *pieceName == "" {
		fmt.Fprintln(os.Stderr, "must specify -algo, -input, -output and -piece")
		flag.PrintDefaults()
		os.Exit(1)
	}

	file, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input file: %v\n", err)
		os.Exit(1)
	}
	points, err := motif.ReadPoints2D(file)
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file: %v\n", err)
		os.Exit(1)
	}

	pointSet := motif.NewPointSet(points)
	fmt.Printf("Loaded %q, size %d points\n", *pieceName, pointSet.Len())

	name := strings.ToUpper(*algoName)
	writer := &outputWriter{
		algorithm: name,
		piece:     *pieceName,
		dir:       *outputDir,
		batchSize: *batchSize,
	}

	description, err := runAlgorithm(name, pointSet, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	writer.flush()
	fmt.Printf("Executed %s and saved %d patterns.\n", description, writer.outputCount)
}

// runAlgorithm resolves name to an algorithm, runs it over the point set and
// streams the results to writer. It returns a description of the executed
// configuration for the summary line.
func runAlgorithm(name string, pointSet motif.PointSet[motif.Point2D], writer *outputWriter) (string, error) {
	switch motif.AlgorithmKind(name) {
	case motif.KindSia, motif.KindSiaR:
		algorithm, err := motif.NewMtpAlgorithm[motif.Point2D](motif.AlgorithmConfig{
			Kind:   motif.AlgorithmKind(name),
			Window: *window,
		})
		if err != nil {
			return "", err
		}
		algorithm.ComputeMtpsToSink(pointSet, writer.outputMtp)
		if motif.AlgorithmKind(name) == motif.KindSiaR {
			return fmt.Sprintf("%s (r=%d)", name, *window), nil
		}
		return name, nil

	case motif.KindSiatec, motif.KindSiatecC, motif.KindSiatecCH:
		algorithm, err := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{
			Kind:   motif.AlgorithmKind(name),
			MaxIOI: *maxIOI,
		})
		if err != nil {
			return "", err
		}
		algorithm.ComputeTecsToSink(pointSet, writer.outputTec)
		if motif.AlgorithmKind(name) != motif.KindSiatec {
			return fmt.Sprintf("%s (max-ioi=%v)", name, *maxIOI), nil
		}
		return name, nil
	}

	switch name {
	case "COSIATEC", "SIATEC-COMPRESS":
		inner, err := motif.NewTecAlgorithm[motif.Point2D](motif.AlgorithmConfig{
			Kind:   motif.AlgorithmKind(strings.ToUpper(*innerName)),
			MaxIOI: *maxIOI,
		})
		if err != nil {
			return "", fmt.Errorf("invalid inner algorithm %q: %w", *innerName, err)
		}

		var compressor motif.TecAlgorithm[motif.Point2D]
		if name == "COSIATEC" {
			compressor = motif.NewCosiatec(inner)
		} else {
			compressor = motif.NewSiatecCompress(inner)
		}
		compressor.ComputeTecsToSink(pointSet, writer.outputTec)
		return fmt.Sprintf("%s (inner=%s)", name, strings.ToUpper(*innerName)), nil
	}

	return "", fmt.Errorf("unrecognized algorithm: %s", name)
}

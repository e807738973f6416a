package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"backend/models"
)

// RecognitionService turns a food photo into catalog candidates: Rekognition
// labels the image, then the labels are searched against the catalog
// descriptions. Optional feature; constructing it fails when AWS config is
// missing and the caller surfaces that per request.
type RecognitionService struct {
	client  *rekognition.Client
	catalog *CatalogService
}

func NewRecognitionService(catalog *CatalogService) (*RecognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RecognitionService{
		client:  rekognition.NewFromConfig(cfg),
		catalog: catalog,
	}, nil
}

// RecognizeFood returns catalog foods matching the top labels detected in a
// base64-encoded image ("data:image/...;base64,...").
func (r *RecognitionService) RecognizeFood(base64Img string) ([]models.Food, error) {
	labels, err := r.recognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.New("no labels detected")
	}

	var foods []models.Food
	seen := make(map[uint]bool)
	for _, label := range labels {
		matches, err := r.catalog.SearchByDescription(label)
		if err != nil {
			return nil, err
		}
		for _, f := range matches {
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			foods = append(foods, f)
		}
		if len(foods) > 0 {
			break // first label with catalog hits wins
		}
	}
	return foods, nil
}

// recognizeLabels returns the top labels for a base64-encoded image.
func (r *RecognitionService) recognizeLabels(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

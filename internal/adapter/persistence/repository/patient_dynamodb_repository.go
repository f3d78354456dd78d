package repository

import (
	"context"

	"protese_lab/internal/domain/entities"
	"protese_lab/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPatientsTableName = "patients"

type workflowStepItem struct {
	ID        string `dynamodbav:"id"`
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Notes     string `dynamodbav:"notes,omitempty"`
}

type patientItem struct {
	ID              string             `dynamodbav:"id"`
	Name            string             `dynamodbav:"name"`
	Clinic          string             `dynamodbav:"clinic"`
	DoctorName      string             `dynamodbav:"doctor_name"`
	DoctorPhone     string             `dynamodbav:"doctor_phone,omitempty"`
	ProsthesisType  string             `dynamodbav:"prosthesis_type,omitempty"`
	Notes           string             `dynamodbav:"notes,omitempty"`
	ServiceValue    string             `dynamodbav:"service_value"`
	LaborCost       string             `dynamodbav:"labor_cost"`
	EntryDate       string             `dynamodbav:"entry_date"`
	DueDate         string             `dynamodbav:"due_date,omitempty"`
	PaymentStatus   string             `dynamodbav:"payment_status"`
	WorkflowHistory []workflowStepItem `dynamodbav:"workflow_history"`
	CurrentStatus   string             `dynamodbav:"current_status"`
	IsActive        bool               `dynamodbav:"is_active"`
}

// PatientDynamoRepository persists Patient entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The workflow history is stored inline as a list attribute in insertion
// order; the store never reorders it.

type PatientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPatientRepository = (*PatientDynamoRepository)(nil)

func NewPatientDynamoRepository(ddb *dynamodb.Client) *PatientDynamoRepository {
	return &PatientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PATIENTS_TABLE", defaultPatientsTableName),
	}
}

func (r *PatientDynamoRepository) ListAll(ctx context.Context) ([]entities.Patient, error) {
	var patients []entities.Patient
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []patientItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			patients = append(patients, fromPatientItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return patients, nil
}

func (r *PatientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Patient{}, err
	}
	if len(out.Item) == 0 {
		return entities.Patient{}, nil
	}

	var it patientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Patient{}, err
	}
	return fromPatientItem(it), nil
}

// Save is a full upsert: it creates the item when absent and overwrites it
// entirely when present.
func (r *PatientDynamoRepository) Save(ctx context.Context, p entities.Patient) error {
	av, err := attributevalue.MarshalMap(toPatientItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Delete removes the item; deleting an absent id is a no-op.
func (r *PatientDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPatientItem(p entities.Patient) patientItem {
	steps := make([]workflowStepItem, 0, len(p.WorkflowHistory))
	for _, s := range p.WorkflowHistory {
		steps = append(steps, workflowStepItem{
			ID:        s.ID,
			Status:    string(s.Status),
			Timestamp: timeToString(s.Timestamp),
			Notes:     s.Notes,
		})
	}
	return patientItem{
		ID:              p.ID,
		Name:            p.Name,
		Clinic:          p.Clinic,
		DoctorName:      p.DoctorName,
		DoctorPhone:     p.DoctorPhone,
		ProsthesisType:  p.ProsthesisType,
		Notes:           p.Notes,
		ServiceValue:    floatToString(p.ServiceValue),
		LaborCost:       floatToString(p.LaborCost),
		EntryDate:       timeToString(p.EntryDate),
		DueDate:         timeToString(p.DueDate),
		PaymentStatus:   string(p.PaymentStatus),
		WorkflowHistory: steps,
		CurrentStatus:   string(p.CurrentStatus),
		IsActive:        p.IsActive,
	}
}

func fromPatientItem(it patientItem) entities.Patient {
	steps := make([]entities.WorkflowStep, 0, len(it.WorkflowHistory))
	for _, s := range it.WorkflowHistory {
		steps = append(steps, entities.WorkflowStep{
			ID:        s.ID,
			Status:    entities.WorkflowStatus(s.Status),
			Timestamp: stringToTime(s.Timestamp),
			Notes:     s.Notes,
		})
	}
	return entities.Patient{
		ID:              it.ID,
		Name:            it.Name,
		Clinic:          it.Clinic,
		DoctorName:      it.DoctorName,
		DoctorPhone:     it.DoctorPhone,
		ProsthesisType:  it.ProsthesisType,
		Notes:           it.Notes,
		ServiceValue:    stringToFloat(it.ServiceValue),
		LaborCost:       stringToFloat(it.LaborCost),
		EntryDate:       stringToTime(it.EntryDate),
		DueDate:         stringToTime(it.DueDate),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		WorkflowHistory: steps,
		CurrentStatus:   entities.WorkflowStatus(it.CurrentStatus),
		IsActive:        it.IsActive,
	}
}

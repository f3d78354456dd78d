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

const (
	defaultClinicsTableName      = "clinics"
	defaultServiceItemsTableName = "service_items"
)

type clinicItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	DoctorName string `dynamodbav:"doctor_name,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty"`
}

type serviceItemItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

// ClinicDynamoRepository persists Clinic registry entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClinicDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClinicRepository = (*ClinicDynamoRepository)(nil)

func NewClinicDynamoRepository(ddb *dynamodb.Client) *ClinicDynamoRepository {
	return &ClinicDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLINICS_TABLE", defaultClinicsTableName),
	}
}

func (r *ClinicDynamoRepository) ListAll(ctx context.Context) ([]entities.Clinic, error) {
	var clinics []entities.Clinic
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []clinicItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			clinics = append(clinics, entities.Clinic{
				ID:         it.ID,
				Name:       it.Name,
				DoctorName: it.DoctorName,
				Phone:      it.Phone,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return clinics, nil
}

func (r *ClinicDynamoRepository) Save(ctx context.Context, c entities.Clinic) error {
	av, err := attributevalue.MarshalMap(clinicItem{
		ID:         c.ID,
		Name:       c.Name,
		DoctorName: c.DoctorName,
		Phone:      c.Phone,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ClinicDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ServiceItemDynamoRepository persists service catalog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceItemRepository = (*ServiceItemDynamoRepository)(nil)

func NewServiceItemDynamoRepository(ddb *dynamodb.Client) *ServiceItemDynamoRepository {
	return &ServiceItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ITEMS_TABLE", defaultServiceItemsTableName),
	}
}

func (r *ServiceItemDynamoRepository) ListAll(ctx context.Context) ([]entities.ServiceItem, error) {
	var services []entities.ServiceItem
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceItemItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			services = append(services, entities.ServiceItem{
				ID:    it.ID,
				Name:  it.Name,
				Price: stringToFloat(it.Price),
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return services, nil
}

func (r *ServiceItemDynamoRepository) Save(ctx context.Context, s entities.ServiceItem) error {
	av, err := attributevalue.MarshalMap(serviceItemItem{
		ID:    s.ID,
		Name:  s.Name,
		Price: floatToString(s.Price),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ServiceItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

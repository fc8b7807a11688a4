package sdk

import (
	"errors"
	"fmt"

	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/body"

	"github.com/bolihq/bolireg/schema"
)

const callerHeader = "X-Boli-Caller"

// Client is a thin http client for a bolireg node. Caller identifies the
// acting identity on every mutating request.
type Client struct {
	Caller string
	cli    *gentleman.Client
}

func New(boliUrl, caller string) *Client {
	return &Client{
		Caller: caller,
		cli:    gentleman.New().URL(boliUrl),
	}
}

func (c *Client) GetAsset(assetId string) (schema.AssetState, error) {
	st := schema.AssetState{}
	err := c.getJSON(fmt.Sprintf("/asset/%s", assetId), &st)
	return st, err
}

func (c *Client) GetAssetEvents(assetId string) ([]schema.AssetEvent, error) {
	events := make([]schema.AssetEvent, 0)
	err := c.getJSON(fmt.Sprintf("/asset/%s/events", assetId), &events)
	return events, err
}

func (c *Client) AppendMetadata(assetId, fragment string) error {
	return c.postJSON(fmt.Sprintf("/asset/%s/metadata", assetId), map[string]string{"fragment": fragment}, nil)
}

func (c *Client) CreateMarineAsset(params schema.CreateMarineAssetParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/marine", params, &resp)
	return resp.AssetId, err
}

func (c *Client) TransferMarineAsset(assetId string, params schema.TransferParams) error {
	return c.postJSON(fmt.Sprintf("/marine/%s/transfer", assetId), params, nil)
}

func (c *Client) CreateCarbonProject(params schema.CreateCarbonProjectParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/carbon", params, &resp)
	return resp.AssetId, err
}

func (c *Client) IssueCredits(assetId, recipient string, amount uint64) error {
	return c.postJSON(fmt.Sprintf("/carbon/%s/issue", assetId), map[string]interface{}{
		"recipient": recipient, "amount": amount,
	}, nil)
}

func (c *Client) RetireCredits(assetId string, amount uint64, beneficiary, reason string) error {
	return c.postJSON(fmt.Sprintf("/carbon/%s/retire", assetId), map[string]interface{}{
		"amount": amount, "beneficiary": beneficiary, "reason": reason,
	}, nil)
}

func (c *Client) CreateBond(params schema.CreateBondParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/bond", params, &resp)
	return resp.AssetId, err
}

func (c *Client) InvestInBond(assetId string, amount uint64) error {
	return c.postJSON(fmt.Sprintf("/bond/%s/invest", assetId), map[string]interface{}{"amount": amount}, nil)
}

func (c *Client) ClaimBondValue(assetId string) (uint64, error) {
	resp := struct {
		Payout uint64 `json:"payout"`
	}{}
	err := c.postJSON(fmt.Sprintf("/bond/%s/claim", assetId), map[string]interface{}{}, &resp)
	return resp.Payout, err
}

func (c *Client) CreateHeritageAsset(params schema.CreateHeritageAssetParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/heritage", params, &resp)
	return resp.AssetId, err
}

func (c *Client) ContributeToProject(assetId string, amount uint64) error {
	return c.postJSON(fmt.Sprintf("/heritage/%s/contribute", assetId), map[string]interface{}{"amount": amount}, nil)
}

func (c *Client) DistributeOwnershipTokens(assetId string, batchSize int) (schema.DistributionResult, error) {
	res := schema.DistributionResult{}
	err := c.postJSON(fmt.Sprintf("/heritage/%s/tokens/distribute", assetId), map[string]interface{}{
		"batchSize": batchSize,
	}, &res)
	return res, err
}

func (c *Client) CreateProperty(params schema.CreatePropertyParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/property", params, &resp)
	return resp.AssetId, err
}

func (c *Client) CreateEnergyProject(params schema.CreateEnergyProjectParams) (string, error) {
	resp := schema.RespAssetId{}
	err := c.postJSON("/energy", params, &resp)
	return resp.AssetId, err
}

func (c *Client) GetKycStatus(identity string) (string, error) {
	resp := schema.RespStatus{}
	err := c.getJSON(fmt.Sprintf("/compliance/kyc/%s", identity), &resp)
	return resp.Status, err
}

func (c *Client) SetKycStatus(identity, status string, expiresAt int64) error {
	return c.postJSON("/compliance/kyc", map[string]interface{}{
		"identity": identity, "status": status, "expiresAt": expiresAt,
	}, nil)
}

func (c *Client) VerifyTransactionCompliance(identity, assetId, assetType, jurisdiction string) (bool, error) {
	resp := struct {
		Allowed bool `json:"allowed"`
	}{}
	path := fmt.Sprintf("/compliance/verify?identity=%s&assetId=%s&assetType=%s&jurisdiction=%s",
		identity, assetId, assetType, jurisdiction)
	err := c.getJSON(path, &resp)
	return resp.Allowed, err
}

func (c *Client) postJSON(path string, payload interface{}, out interface{}) error {
	req := c.cli.Post()
	req.AddPath(path)
	req.SetHeader(callerHeader, c.Caller)
	req.Use(body.JSON(payload))
	resp, err := req.Send()
	if err != nil {
		return err
	}
	defer resp.Close()
	if !resp.Ok {
		return errors.New(fmt.Sprintf("resp failed: %s", resp.String()))
	}
	if out == nil {
		return nil
	}
	return resp.JSON(out)
}

func (c *Client) getJSON(path string, out interface{}) error {
	req := c.cli.Get()
	req.AddPath(path)
	resp, err := req.Send()
	if err != nil {
		return err
	}
	defer resp.Close()
	if !resp.Ok {
		return errors.New(fmt.Sprintf("resp failed: %s", resp.String()))
	}
	return resp.JSON(out)
}

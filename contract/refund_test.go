package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/sdk"
)

func TestUserRefund(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	credential := userDeposit(t, vm, "hive:someone", 300)
	callContract(t, vm, MoveToRefund, "move_to_refund", "7", nil, adminAddress, true)

	res := callContract(t, vm, UserRefund, "user_refund", credential, nil, "hive:someone", true)
	assert.Equal(t, "refunded 300 hbd", *res.Ret)

	// tokens back, credential burned, record gone
	assert.Equal(t, int64(200000), vm.BalanceOf("hive:someone", sdk.AssetHbd.String()))
	assert.Equal(t, int64(0), vm.BalanceOf(raisedVaultAddr(), sdk.AssetHbd.String()))
	assert.Equal(t, int64(0), vm.MintBalanceOf(credential, "hive:someone"))
	assert.Nil(t, loadPosition(sdk.Address(credential)))

	// exactly-once: the second attempt has nothing left to claim
	res = callContract(t, vm, UserRefund, "user_refund", credential, nil, "hive:someone", false)
	assert.Equal(t, ErrAlreadyProcessed, res.ErrSymbol)
}

func TestUserRefundRequiresCredential(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	credential := userDeposit(t, vm, "hive:someone", 300)
	callContract(t, vm, MoveToRefund, "move_to_refund", "7", nil, adminAddress, true)

	// someone else cannot claim with a credential they do not hold
	res := callContract(t, vm, UserRefund, "user_refund", credential, nil, "hive:outsider", false)
	assert.Equal(t, ErrDoesNotHoldPosition, res.ErrSymbol)
	assert.Equal(t, int64(300), vm.BalanceOf(raisedVaultAddr(), sdk.AssetHbd.String()))

	// the rightful holder still can
	callContract(t, vm, UserRefund, "user_refund", credential, nil, "hive:someone", true)
}

func TestRefundOnlyInRefundPhase(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	credential := userDeposit(t, vm, "hive:someone", 300)

	// still collecting
	res := callContract(t, vm, UserRefund, "user_refund", credential, nil, "hive:someone", false)
	assert.Equal(t, ErrInvalidPhaseChange, res.ErrSymbol)
}

func TestProjectRefund(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	userCred := userDeposit(t, vm, "hive:someone", 300)
	projectCred := projectDeposit(t, vm)
	callContract(t, vm, MoveToRefund, "move_to_refund", "7", nil, adminAddress, true)

	res := callContract(t, vm, ProjectRefund, "project_refund", projectCred, nil, projectAddress, true)
	assert.Equal(t, "refunded 1000 tok:launch", *res.Ret)
	assert.Equal(t, int64(200000), vm.BalanceOf(projectAddress, testLaunchedAsset))
	assert.Equal(t, int64(0), vm.BalanceOf(launchedVaultAddr(), testLaunchedAsset))

	// role mismatch: a project credential cannot go through user_refund
	res = callContract(t, vm, UserRefund, "user_refund", projectCred, nil, projectAddress, false)

	// and a user credential cannot go through project_refund
	res = callContract(t, vm, ProjectRefund, "project_refund", userCred, nil, "hive:someone", false)
	assert.Equal(t, ErrDoesNotHoldPosition, res.ErrSymbol)

	// the user refund path is untouched by the project refund
	callContract(t, vm, UserRefund, "user_refund", userCred, nil, "hive:someone", true)
}

func TestRefundScenarioMultipleDepositors(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	credA := userDeposit(t, vm, "hive:someone", 150)
	credB := userDeposit(t, vm, "hive:someoneelse", 100)
	credC := userDeposit(t, vm, "hive:member2", 120)
	callContract(t, vm, MoveToRefund, "move_to_refund", "7", nil, adminAddress, true)

	callContract(t, vm, UserRefund, "user_refund", credB, nil, "hive:someoneelse", true)
	callContract(t, vm, UserRefund, "user_refund", credA, nil, "hive:someone", true)
	callContract(t, vm, UserRefund, "user_refund", credC, nil, "hive:member2", true)

	assert.Equal(t, int64(0), vm.BalanceOf(raisedVaultAddr(), sdk.AssetHbd.String()))
	assert.Equal(t, int64(200000), vm.BalanceOf("hive:someone", sdk.AssetHbd.String()))
	assert.Equal(t, int64(200000), vm.BalanceOf("hive:someoneelse", sdk.AssetHbd.String()))
	assert.Equal(t, int64(200000), vm.BalanceOf("hive:member2", sdk.AssetHbd.String()))
}

func TestGetPosition(t *testing.T) {
	vm := setupContractTest()
	initLaunchpad(t, vm)
	createDefaultCampaign(t, vm)

	credential := userDeposit(t, vm, "hive:someone", 300)

	res := callContract(t, vm, GetPosition, "get_position", credential, nil, "hive:outsider", true)
	require.NotNil(t, res.Ret)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(*res.Ret), &view))
	assert.Equal(t, credential, view["credential"])
	assert.Equal(t, float64(300), view["amount"])
	assert.Equal(t, float64(testUID), view["campaign_uid"])

	callContract(t, vm, GetPosition, "get_position", "mint:doesnotexist", nil, "hive:outsider", false)
}

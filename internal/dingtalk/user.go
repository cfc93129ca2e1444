package dingtalk

import "github.com/sirupsen/logrus"

type SimpleUser struct {
	UserID string `json:"userid"`
	Name   string `json:"name"`
}

type userListSimpleResponse struct {
	BaseResponse
	Result struct {
		HasMore    bool         `json:"has_more"`
		NextCursor int64        `json:"next_cursor"`
		List       []SimpleUser `json:"list"`
	} `json:"result"`
}

// GetUserListSimple mengambil semua user (userid + nama) satu departemen.
// Pagination cursor diikuti sampai has_more = false.
// POST /topapi/user/listsimple
func (c *Client) GetUserListSimple(deptID int64) ([]SimpleUser, error) {
	var users []SimpleUser
	cursor := int64(0)

	for {
		var resp userListSimpleResponse
		err := c.Post("/topapi/user/listsimple", map[string]interface{}{
			"dept_id": deptID,
			"cursor":  cursor,
			"size":    100,
		}, &resp)
		if err != nil {
			return nil, err
		}

		users = append(users, resp.Result.List...)
		if !resp.Result.HasMore {
			break
		}
		cursor = resp.Result.NextCursor
	}

	logrus.WithFields(logrus.Fields{
		"dept_id": deptID,
		"count":   len(users),
	}).Debug("Fetch user listsimple selesai")
	return users, nil
}

type userIDListResponse struct {
	BaseResponse
	Result struct {
		UserIDList []string `json:"userid_list"`
	} `json:"result"`
}

// GetUserIDList mengambil daftar userid satu departemen.
// POST /topapi/user/listid
func (c *Client) GetUserIDList(deptID int64) ([]string, error) {
	var resp userIDListResponse
	err := c.Post("/topapi/user/listid", map[string]interface{}{
		"dept_id": deptID,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Result.UserIDList, nil
}
